package repository

import (
	"context"
	"fmt"

	"experience-booking/internal/data/entity"
	"experience-booking/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (username, experience_id, date, people)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.Username,
		booking.ExperienceID,
		booking.Date,
		booking.People,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("username", booking.Username),
			zap.Int64("experience_id", booking.ExperienceID),
		)
		return fmt.Errorf("create booking for experience %d by %s: %w",
			booking.ExperienceID, booking.Username, err)
	}

	return nil
}

func (r *bookingRepository) FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error) {
	query := `
		SELECT id, username, experience_id, date, people, created_at
		FROM bookings
		WHERE username = $1
	`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		r.log.Error("Failed to find bookings by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find bookings by username %s: %w", username, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Username,
			&booking.ExperienceID,
			&booking.Date,
			&booking.People,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}
