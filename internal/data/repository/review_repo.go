package repository

import (
	"context"
	"fmt"

	"experience-booking/internal/data/entity"
	"experience-booking/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByExperienceID(ctx context.Context, experienceID int64) ([]*entity.Review, error)

	// Business queries
	GetExperienceReviewStats(ctx context.Context, experienceID int64) (float64, int64, error) // rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (username, experience_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.Username,
		review.ExperienceID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("username", review.Username),
			zap.Int64("experience_id", review.ExperienceID),
		)
		return fmt.Errorf("create review for experience %d by %s: %w",
			review.ExperienceID, review.Username, err)
	}

	return nil
}

func (r *reviewRepository) FindByExperienceID(ctx context.Context, experienceID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, username, experience_id, rating, comment, created_at
		FROM reviews
		WHERE experience_id = $1
	`

	rows, err := r.db.Query(ctx, query, experienceID)
	if err != nil {
		r.log.Error("Failed to find reviews by experience ID",
			zap.Error(err),
			zap.Int64("experience_id", experienceID),
		)
		return nil, fmt.Errorf("find reviews by experience id %d: %w", experienceID, err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.Username,
			&review.ExperienceID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) GetExperienceReviewStats(ctx context.Context, experienceID int64) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM reviews
		WHERE experience_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, experienceID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get experience review stats",
			zap.Error(err),
			zap.Int64("experience_id", experienceID),
		)
		return 0, 0, fmt.Errorf("get experience review stats for %d: %w", experienceID, err)
	}

	return avgRating, reviewCount, nil
}
