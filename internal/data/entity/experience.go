package entity

type Experience struct {
	BaseSimple
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Location    *string `db:"location"`
	ImageURL    *string `db:"image_url"`
	CategoryID  int64   `db:"category_id"`
}
