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

// fakeBookingRepo is an in-memory BookingRepository
type fakeBookingRepo struct {
	byID   map[int64]*entity.Booking
	nextID int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[int64]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	stored := *booking
	f.byID[booking.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, booking := range f.byID {
		if booking.Username == username {
			b := *booking
			bookings = append(bookings, &b)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("booking %d not found", id)
	}
	delete(f.byID, id)
	return nil
}

func newBookingService(repo *fakeBookingRepo) BookingService {
	return NewBookingService(&repository.Repository{Booking: repo}, zap.NewNop())
}

func TestCreateBooking(t *testing.T) {
	service := newBookingService(newFakeBookingRepo())

	created, err := service.CreateBooking(context.Background(), &request.BookingRequest{
		Username:     "alice",
		ExperienceID: 7,
		Date:         "2026-09-14T10:00:00Z",
		People:       intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, int64(7), created.ExperienceID)
	assert.Equal(t, 4, created.People)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC), created.Date)
}

func TestCreateBookingDateOnly(t *testing.T) {
	service := newBookingService(newFakeBookingRepo())

	created, err := service.CreateBooking(context.Background(), &request.BookingRequest{
		Username:     "alice",
		ExperienceID: 7,
		Date:         "2026-09-14",
		People:       intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), created.Date)
}

func TestCreateBookingInvalidDate(t *testing.T) {
	service := newBookingService(newFakeBookingRepo())

	_, err := service.CreateBooking(context.Background(), &request.BookingRequest{
		Username:     "alice",
		ExperienceID: 7,
		Date:         "next tuesday",
		People:       intPtr(2),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking date")
}

func TestGetUserBookingsFiltersByUsername(t *testing.T) {
	service := newBookingService(newFakeBookingRepo())

	for _, username := range []string{"alice", "bob", "alice"} {
		_, err := service.CreateBooking(context.Background(), &request.BookingRequest{
			Username:     username,
			ExperienceID: 7,
			Date:         "2026-09-14",
			People:       intPtr(2),
		})
		require.NoError(t, err)
	}

	bookings, err := service.GetUserBookings(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, booking := range bookings {
		assert.Equal(t, "alice", booking.Username)
	}
}

func TestDeleteBooking(t *testing.T) {
	service := newBookingService(newFakeBookingRepo())

	created, err := service.CreateBooking(context.Background(), &request.BookingRequest{
		Username:     "alice",
		ExperienceID: 7,
		Date:         "2026-09-14",
		People:       intPtr(2),
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteBooking(context.Background(), created.ID))

	bookings, err := service.GetUserBookings(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestDeleteBookingNotFound(t *testing.T) {
	service := newBookingService(newFakeBookingRepo())

	err := service.DeleteBooking(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
