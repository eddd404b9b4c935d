package models

// Review is a rated comment attached to a meal. Stars is always 1-5.
type Review struct {
	ID          int64  `json:"id" db:"id"`
	MealID      int64  `json:"meal_id" db:"meal_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Stars       int    `json:"stars" db:"stars"`
}
