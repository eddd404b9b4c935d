package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report validation failures by json field name, not Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// MealPayload is the body accepted by POST /api/meals.
type MealPayload struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	When            string   `json:"when" validate:"required"`
	MaxReservations *int     `json:"max_reservations" validate:"required,gt=0"`
	Price           *float64 `json:"price" validate:"required,gt=0"`
	CreatedDate     string   `json:"created_date" validate:"required"`
}

// MealUpdatePayload is the create payload minus created_date, which is never
// rewritten.
type MealUpdatePayload struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	When            string   `json:"when" validate:"required"`
	MaxReservations *int     `json:"max_reservations" validate:"required,gt=0"`
	Price           *float64 `json:"price" validate:"required,gt=0"`
}

// ReservationPayload is the body accepted by POST /api/reservations.
type ReservationPayload struct {
	MealID             *int64 `json:"meal_id" validate:"required,gt=0"`
	NumberOfGuests     *int   `json:"number_of_guests" validate:"required,gt=0"`
	CreatedDate        string `json:"created_date" validate:"required"`
	ContactPhonenumber string `json:"contact_phonenumber" validate:"required"`
	ContactName        string `json:"contact_name" validate:"required"`
	ContactEmail       string `json:"contact_email" validate:"required"`
}

type ReservationUpdatePayload struct {
	MealID             *int64 `json:"meal_id" validate:"required,gt=0"`
	NumberOfGuests     *int   `json:"number_of_guests" validate:"required,gt=0"`
	ContactPhonenumber string `json:"contact_phonenumber" validate:"required"`
	ContactName        string `json:"contact_name" validate:"required"`
	ContactEmail       string `json:"contact_email" validate:"required"`
}

// ReviewPayload is the body accepted by POST and PUT on reviews. Stars is
// an integer between 1 and 5, checked regardless of any other field.
type ReviewPayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Stars       *int   `json:"stars" validate:"required,min=1,max=5"`
	MealID      *int64 `json:"meal_id" validate:"required,gt=0"`
}

// decodeBody unmarshals the request body into dst, turning JSON type
// mismatches into client errors naming the field.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			if isNumericKind(typeErr.Type.Kind()) {
				return fmt.Errorf("%s must be a number", typeErr.Field)
			}
			return fmt.Errorf("%s must be of type %s", typeErr.Field, typeErr.Type)
		}
		return errors.New("Invalid request body")
	}
	return nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// validationMessage turns the first failed rule into the message the API
// promises for it.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return "All fields are required"
	case "gt":
		return fmt.Sprintf("%s must be greater than 0", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s must be between 1 and 5", fe.Field())
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}
