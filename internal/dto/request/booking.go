package request

// People is a pointer so a missing field fails validation while an
// explicit 0 passes through; the count is not range-checked.
type BookingRequest struct {
	Username     string `json:"username" validate:"required"`
	ExperienceID int64  `json:"experience_id" validate:"required"`
	Date         string `json:"date" validate:"required"` // ISO date string
	People       *int   `json:"people" validate:"required"`
}
