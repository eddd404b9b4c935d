package models

import "time"

// Reservation is a guest's booking against a meal's capacity.
type Reservation struct {
	ID                 int64     `json:"id" db:"id"`
	MealID             int64     `json:"meal_id" db:"meal_id"`
	NumberOfGuests     int       `json:"number_of_guests" db:"number_of_guests"`
	CreatedDate        time.Time `json:"created_date" db:"created_date"`
	ContactPhonenumber string    `json:"contact_phonenumber" db:"contact_phonenumber"`
	ContactName        string    `json:"contact_name" db:"contact_name"`
	ContactEmail       string    `json:"contact_email" db:"contact_email"`
}
