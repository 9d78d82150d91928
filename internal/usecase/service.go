package usecase

import (
	"experience-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Category   CategoryService
	Experience ExperienceService
	Booking    BookingService
	Review     ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Category:   NewCategoryService(repo, log),
		Experience: NewExperienceService(repo, log),
		Booking:    NewBookingService(repo, log),
		Review:     NewReviewService(repo, log),
	}
}
