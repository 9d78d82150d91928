package entity

type Review struct {
	BaseSimple
	Username     string `db:"username"`
	ExperienceID int64  `db:"experience_id"`
	Rating       int    `db:"rating"`
	Comment      string `db:"comment"`
}
