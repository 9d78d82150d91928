package usecase

import (
	"context"
	"testing"
	"time"

	"experience-booking/internal/data/entity"
	"experience-booking/internal/data/repository"
	"experience-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReviewRepo is an in-memory ReviewRepository
type fakeReviewRepo struct {
	byID   map[int64]*entity.Review
	nextID int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byID: make(map[int64]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.nextID++
	review.ID = f.nextID
	review.CreatedAt = time.Now()
	stored := *review
	f.byID[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) FindByExperienceID(ctx context.Context, experienceID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range f.byID {
		if review.ExperienceID == experienceID {
			r := *review
			reviews = append(reviews, &r)
		}
	}
	return reviews, nil
}

func (f *fakeReviewRepo) GetExperienceReviewStats(ctx context.Context, experienceID int64) (float64, int64, error) {
	var sum, count int64
	for _, review := range f.byID {
		if review.ExperienceID == experienceID {
			sum += int64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func newReviewService(repo *fakeReviewRepo) ReviewService {
	return NewReviewService(&repository.Repository{Review: repo}, zap.NewNop())
}

func TestCreateReview(t *testing.T) {
	service := newReviewService(newFakeReviewRepo())

	created, err := service.CreateReview(context.Background(), &request.ReviewRequest{
		Username:     "alice",
		ExperienceID: 5,
		Rating:       intPtr(4),
		Comment:      "great trip",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, int64(5), created.ExperienceID)
	assert.Equal(t, 4, created.Rating)
	assert.Equal(t, "great trip", created.Comment)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateReviewRatingUnchecked(t *testing.T) {
	service := newReviewService(newFakeReviewRepo())

	// out-of-range ratings are stored as given
	created, err := service.CreateReview(context.Background(), &request.ReviewRequest{
		Username:     "alice",
		ExperienceID: 5,
		Rating:       intPtr(11),
		Comment:      "off the scale",
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.Rating)
}

func TestGetExperienceReviewsFiltersByExperience(t *testing.T) {
	service := newReviewService(newFakeReviewRepo())

	for _, experienceID := range []int64{5, 5, 9} {
		_, err := service.CreateReview(context.Background(), &request.ReviewRequest{
			Username:     "alice",
			ExperienceID: experienceID,
			Rating:       intPtr(3),
			Comment:      "fine",
		})
		require.NoError(t, err)
	}

	reviews, err := service.GetExperienceReviews(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, review := range reviews {
		assert.Equal(t, int64(5), review.ExperienceID)
	}
}

func TestGetExperienceReviewStats(t *testing.T) {
	service := newReviewService(newFakeReviewRepo())

	for _, rating := range []int{2, 4} {
		_, err := service.CreateReview(context.Background(), &request.ReviewRequest{
			Username:     "alice",
			ExperienceID: 5,
			Rating:       intPtr(rating),
			Comment:      "fine",
		})
		require.NoError(t, err)
	}

	stats, err := service.GetExperienceReviewStats(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, stats.AverageRating)
	assert.Equal(t, int64(2), stats.ReviewCount)
}

func TestGetExperienceReviewStatsEmpty(t *testing.T) {
	service := newReviewService(newFakeReviewRepo())

	stats, err := service.GetExperienceReviewStats(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, int64(0), stats.ReviewCount)
}
