package models

import "time"

// Meal represents a shareable meal listing with price, schedule and capacity.
type Meal struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	Location        string    `json:"location" db:"location"`
	When            time.Time `json:"when" db:"when"`
	MaxReservations int       `json:"max_reservations" db:"max_reservations"`
	Price           float64   `json:"price" db:"price"`
	CreatedDate     time.Time `json:"created_date" db:"created_date"`
}

// MealWithCount is a Meal augmented with the number of reservations made
// against it. The count is derived at query time, never stored.
type MealWithCount struct {
	Meal
	ReservationCount int64 `json:"reservation_count" db:"reservation_count"`
}
