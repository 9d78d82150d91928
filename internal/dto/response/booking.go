package response

import (
	"experience-booking/internal/data/entity"
	"time"
)

type BookingResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	ExperienceID int64     `json:"experience_id"`
	Date         time.Time `json:"date"`
	People       int       `json:"people"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converter
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID,
		Username:     booking.Username,
		ExperienceID: booking.ExperienceID,
		Date:         booking.Date,
		People:       booking.People,
		CreatedAt:    booking.CreatedAt,
	}
}
