package adaptor

import (
	"experience-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Category   *CategoryHandler
	Experience *ExperienceHandler
	Booking    *BookingHandler
	Review     *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Category:   NewCategoryHandler(service.Category, log),
		Experience: NewExperienceHandler(service.Experience, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Review:     NewReviewHandler(service.Review, log),
	}
}
