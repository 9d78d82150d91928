package entity

import "time"

type Booking struct {
	BaseSimple
	Username     string    `db:"username"`
	ExperienceID int64     `db:"experience_id"`
	Date         time.Time `db:"date"`
	People       int       `db:"people"`
}
