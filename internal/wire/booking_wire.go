package wire

import (
	"experience-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /bookings - Create booking
	r.Post("/bookings", bookingHandler.CreateBooking)

	// GET /bookings/user/{username} - List bookings for a user
	r.Get("/bookings/user/{username}", bookingHandler.GetUserBookings)

	// DELETE /bookings/{id} - Remove booking
	r.Delete("/bookings/{id}", bookingHandler.DeleteBooking)
}
