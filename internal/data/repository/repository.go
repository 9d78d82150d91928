package repository

import (
	"errors"

	"experience-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	Category   CategoryRepository
	Experience ExperienceRepository
	Booking    BookingRepository
	Review     ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Category:   NewCategoryRepository(db, log),
		Experience: NewExperienceRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Review:     NewReviewRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
