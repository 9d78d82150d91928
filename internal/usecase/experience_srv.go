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

type ExperienceService interface {
	CreateExperience(ctx context.Context, req *request.ExperienceRequest) (*response.ExperienceResponse, error)
	GetExperiences(ctx context.Context) ([]response.ExperienceResponse, error)
	GetExperienceByID(ctx context.Context, id int64) (*response.ExperienceResponse, error)
	UpdateExperience(ctx context.Context, id int64, req *request.ExperienceRequest) (*response.ExperienceResponse, error)
	DeleteExperience(ctx context.Context, id int64) error
}

type experienceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewExperienceService(repo *repository.Repository, log *zap.Logger) ExperienceService {
	return &experienceService{
		repo: repo,
		log:  log.With(zap.String("service", "experience")),
	}
}

func (s *experienceService) CreateExperience(ctx context.Context, req *request.ExperienceRequest) (*response.ExperienceResponse, error) {
	// category_id is stored as given; references are intentionally not
	// checked against the categories table
	experience := &entity.Experience{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}

	if err := s.repo.Experience.Create(ctx, experience); err != nil {
		s.log.Error("Failed to create experience",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, err
	}

	s.log.Info("Experience created",
		zap.Int64("experience_id", experience.ID),
		zap.String("title", experience.Title),
	)

	experienceResp := response.ExperienceToResponse(experience)
	return &experienceResp, nil
}

func (s *experienceService) GetExperiences(ctx context.Context) ([]response.ExperienceResponse, error) {
	experiences, err := s.repo.Experience.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get experiences", zap.Error(err))
		return nil, fmt.Errorf("get experiences: %w", err)
	}

	experienceResponses := make([]response.ExperienceResponse, len(experiences))
	for i, experience := range experiences {
		experienceResponses[i] = response.ExperienceToResponse(experience)
	}

	return experienceResponses, nil
}

func (s *experienceService) GetExperienceByID(ctx context.Context, id int64) (*response.ExperienceResponse, error) {
	experience, err := s.repo.Experience.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	if experience == nil {
		return nil, fmt.Errorf("experience %d not found", id)
	}

	experienceResp := response.ExperienceToResponse(experience)
	return &experienceResp, nil
}

func (s *experienceService) UpdateExperience(ctx context.Context, id int64, req *request.ExperienceRequest) (*response.ExperienceResponse, error) {
	experience, err := s.repo.Experience.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	if experience == nil {
		return nil, fmt.Errorf("experience %d not found", id)
	}

	// Full replace: every field comes from the request
	experience.Title = req.Title
	experience.Description = req.Description
	experience.Price = *req.Price
	experience.Location = req.Location
	experience.ImageURL = req.ImageURL
	experience.CategoryID = req.CategoryID

	if err := s.repo.Experience.Update(ctx, experience); err != nil {
		s.log.Error("Failed to update experience",
			zap.Error(err),
			zap.Int64("experience_id", id),
		)
		return nil, err
	}

	s.log.Info("Experience updated",
		zap.Int64("experience_id", id),
		zap.String("title", experience.Title),
	)

	experienceResp := response.ExperienceToResponse(experience)
	return &experienceResp, nil
}

func (s *experienceService) DeleteExperience(ctx context.Context, id int64) error {
	if err := s.repo.Experience.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to delete experience",
			zap.Error(err),
			zap.Int64("experience_id", id),
		)
		return err
	}

	return nil
}
