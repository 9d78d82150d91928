package wire

import (
	"experience-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /reviews - Create review
	r.Post("/reviews", reviewHandler.CreateReview)

	// GET /reviews/experience/{id} - List reviews for an experience
	r.Get("/reviews/experience/{id}", reviewHandler.GetExperienceReviews)

	// GET /reviews/experience/{id}/stats - Average rating and count
	r.Get("/reviews/experience/{id}/stats", reviewHandler.GetExperienceReviewStats)
}
