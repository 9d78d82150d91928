package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"experience-booking/internal/data/entity"
	"experience-booking/internal/data/repository"
	"experience-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeExperienceRepo is an in-memory ExperienceRepository
type fakeExperienceRepo struct {
	byID   map[int64]*entity.Experience
	nextID int64
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{byID: make(map[int64]*entity.Experience)}
}

func (f *fakeExperienceRepo) Create(ctx context.Context, experience *entity.Experience) error {
	f.nextID++
	experience.ID = f.nextID
	experience.CreatedAt = time.Now()
	stored := *experience
	f.byID[experience.ID] = &stored
	return nil
}

func (f *fakeExperienceRepo) FindAll(ctx context.Context) ([]*entity.Experience, error) {
	var experiences []*entity.Experience
	for _, experience := range f.byID {
		e := *experience
		experiences = append(experiences, &e)
	}
	return experiences, nil
}

func (f *fakeExperienceRepo) FindByID(ctx context.Context, id int64) (*entity.Experience, error) {
	experience, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	e := *experience
	return &e, nil
}

func (f *fakeExperienceRepo) Update(ctx context.Context, experience *entity.Experience) error {
	if _, ok := f.byID[experience.ID]; !ok {
		return fmt.Errorf("experience %d not found", experience.ID)
	}
	stored := *experience
	stored.CreatedAt = f.byID[experience.ID].CreatedAt
	f.byID[experience.ID] = &stored
	return nil
}

func (f *fakeExperienceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("experience %d not found", id)
	}
	delete(f.byID, id)
	return nil
}

func newExperienceService(repo *fakeExperienceRepo) ExperienceService {
	return NewExperienceService(&repository.Repository{Experience: repo}, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestCreateExperience(t *testing.T) {
	service := newExperienceService(newFakeExperienceRepo())

	created, err := service.CreateExperience(context.Background(), &request.ExperienceRequest{
		Title:       "Sunset kayak",
		Description: "Two hours on the bay",
		Price:       floatPtr(39.5),
		Location:    strPtr("Lisbon"),
		ImageURL:    strPtr("https://img.example.com/kayak.jpg"),
		CategoryID:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Sunset kayak", created.Title)
	assert.Equal(t, 39.5, created.Price)
	require.NotNil(t, created.Location)
	assert.Equal(t, "Lisbon", *created.Location)
	assert.Equal(t, int64(1), created.CategoryID)
}

func TestCreateExperienceDanglingCategory(t *testing.T) {
	service := newExperienceService(newFakeExperienceRepo())

	// category references are not checked; a dangling id is accepted
	created, err := service.CreateExperience(context.Background(), &request.ExperienceRequest{
		Title:       "Sunset kayak",
		Description: "Two hours on the bay",
		Price:       floatPtr(39.5),
		CategoryID:  999,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(999), created.CategoryID)
}

func TestUpdateExperienceReplacesAllFields(t *testing.T) {
	service := newExperienceService(newFakeExperienceRepo())

	created, err := service.CreateExperience(context.Background(), &request.ExperienceRequest{
		Title:       "Sunset kayak",
		Description: "Two hours on the bay",
		Price:       floatPtr(39.5),
		Location:    strPtr("Lisbon"),
		ImageURL:    strPtr("https://img.example.com/kayak.jpg"),
		CategoryID:  1,
	})
	require.NoError(t, err)

	// Optional fields not supplied on update are cleared, not kept
	updated, err := service.UpdateExperience(context.Background(), created.ID, &request.ExperienceRequest{
		Title:       "Night kayak",
		Description: "Three hours after dark",
		Price:       floatPtr(55),
		CategoryID:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Night kayak", updated.Title)
	assert.Equal(t, "Three hours after dark", updated.Description)
	assert.Equal(t, 55.0, updated.Price)
	assert.Nil(t, updated.Location)
	assert.Nil(t, updated.ImageURL)
	assert.Equal(t, int64(2), updated.CategoryID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateExperienceNotFound(t *testing.T) {
	service := newExperienceService(newFakeExperienceRepo())

	_, err := service.UpdateExperience(context.Background(), 42, &request.ExperienceRequest{
		Title:       "Night kayak",
		Description: "Three hours after dark",
		Price:       floatPtr(55),
		CategoryID:  2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteExperienceNotFound(t *testing.T) {
	service := newExperienceService(newFakeExperienceRepo())

	err := service.DeleteExperience(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetExperiences(t *testing.T) {
	service := newExperienceService(newFakeExperienceRepo())

	for i := 0; i < 2; i++ {
		_, err := service.CreateExperience(context.Background(), &request.ExperienceRequest{
			Title:       fmt.Sprintf("Trip %d", i),
			Description: "desc",
			Price:       floatPtr(10),
			CategoryID:  1,
		})
		require.NoError(t, err)
	}

	experiences, err := service.GetExperiences(context.Background())
	require.NoError(t, err)
	assert.Len(t, experiences, 2)
}
