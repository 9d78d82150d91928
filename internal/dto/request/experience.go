package request

// ExperienceRequest is shared by create and update. Update is a full
// replace, so the required set is the same for both. Price is a pointer
// so a missing field fails validation while an explicit 0 passes
// through; image_url is stored as given.
type ExperienceRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Location    *string  `json:"location,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	CategoryID  int64    `json:"category_id" validate:"required"`
}
