package usecase

import (
	"context"
	"fmt"
	"time"

	"experience-booking/internal/data/entity"
	"experience-booking/internal/data/repository"
	"experience-booking/internal/dto/request"
	"experience-booking/internal/dto/response"

	"go.uber.org/zap"
)

// Accepted layouts for the booking date field
var bookingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, username string) ([]response.BookingResponse, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	date, err := parseBookingDate(req.Date)
	if err != nil {
		s.log.Warn("Invalid booking date",
			zap.String("date", req.Date),
			zap.String("username", req.Username),
		)
		return nil, err
	}

	// experience_id, people count, and the date itself are stored as
	// given; there is no capacity or double-booking check
	booking := &entity.Booking{
		Username:     req.Username,
		ExperienceID: req.ExperienceID,
		Date:         date,
		People:       *req.People,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("username", req.Username),
			zap.Int64("experience_id", req.ExperienceID),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("username", booking.Username),
		zap.Int64("experience_id", booking.ExperienceID),
		zap.Int("people", booking.People),
	)

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, username string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return err
	}

	return nil
}

func parseBookingDate(value string) (time.Time, error) {
	for _, layout := range bookingDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid booking date %q", value)
}
