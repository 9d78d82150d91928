package response

import (
	"experience-booking/internal/data/entity"
	"time"
)

type ReviewResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	ExperienceID int64     `json:"experience_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type ExperienceReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		Username:     review.Username,
		ExperienceID: review.ExperienceID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
