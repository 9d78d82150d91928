package response

import (
	"experience-booking/internal/data/entity"
	"time"
)

type ExperienceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    *string   `json:"location,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CategoryID  int64     `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converter
func ExperienceToResponse(experience *entity.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:          experience.ID,
		Title:       experience.Title,
		Description: experience.Description,
		Price:       experience.Price,
		Location:    experience.Location,
		ImageURL:    experience.ImageURL,
		CategoryID:  experience.CategoryID,
		CreatedAt:   experience.CreatedAt,
	}
}
