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

type CategoryService interface {
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id int64) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	category := &entity.Category{
		Name: req.Name,
	}

	// Duplicate-name check dan insert happen inside the repository tx
	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Warn("Failed to create category",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, err
	}

	s.log.Info("Category created",
		zap.Int64("category_id", category.ID),
		zap.String("name", category.Name),
	)

	categoryResp := response.CategoryToResponse(category)
	return &categoryResp, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("get categories: %w", err)
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	return categoryResponses, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d not found", id)
	}

	categoryResp := response.CategoryToResponse(category)
	return &categoryResp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %d not found", id)
	}

	// Only the name changes; no uniqueness re-check on update
	category.Name = req.Name

	if err := s.repo.Category.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, err
	}

	s.log.Info("Category updated",
		zap.Int64("category_id", id),
		zap.String("name", category.Name),
	)

	categoryResp := response.CategoryToResponse(category)
	return &categoryResp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.Category.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to delete category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return err
	}

	return nil
}
