package request

// Rating is a pointer so a missing field fails validation while an
// explicit 0 passes through; the value itself is unchecked.
type ReviewRequest struct {
	Username     string `json:"username" validate:"required"`
	ExperienceID int64  `json:"experience_id" validate:"required"`
	Rating       *int   `json:"rating" validate:"required"`
	Comment      string `json:"comment" validate:"required"`
}
