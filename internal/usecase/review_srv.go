package usecase

import (
	"context"
	"fmt"

	"experience-booking/internal/data/entity"
	"experience-booking/internal/data/repository"
	"experience-booking/internal/dto/request"
	"experience-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	GetExperienceReviews(ctx context.Context, experienceID int64) ([]response.ReviewResponse, error)

	// Stats
	GetExperienceReviewStats(ctx context.Context, experienceID int64) (*response.ExperienceReviewStats, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	// rating is stored unchecked; experience_id is not validated against
	// the experiences table
	review := &entity.Review{
		Username:     req.Username,
		ExperienceID: req.ExperienceID,
		Rating:       *req.Rating,
		Comment:      req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("username", req.Username),
			zap.Int64("experience_id", req.ExperienceID),
		)
		return nil, err
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.String("username", review.Username),
		zap.Int64("experience_id", review.ExperienceID),
		zap.Int("rating", review.Rating),
	)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) GetExperienceReviews(ctx context.Context, experienceID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByExperienceID(ctx, experienceID)
	if err != nil {
		s.log.Error("Failed to get experience reviews",
			zap.Error(err),
			zap.Int64("experience_id", experienceID),
		)
		return nil, fmt.Errorf("get experience reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return reviewResponses, nil
}

func (s *reviewService) GetExperienceReviewStats(ctx context.Context, experienceID int64) (*response.ExperienceReviewStats, error) {
	avgRating, reviewCount, err := s.repo.Review.GetExperienceReviewStats(ctx, experienceID)
	if err != nil {
		s.log.Error("Failed to get experience review stats",
			zap.Error(err),
			zap.Int64("experience_id", experienceID),
		)
		return nil, fmt.Errorf("get experience review stats: %w", err)
	}

	return &response.ExperienceReviewStats{
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
	}, nil
}
