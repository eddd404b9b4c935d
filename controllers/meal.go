package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"meal-sharing/models"
	"meal-sharing/store"
	"meal-sharing/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type MealController struct{}

// respondStoreError maps a store failure to the right response: 404 for a
// missing row, generic 500 otherwise. Detail goes to the log only.
func respondStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, sql.ErrNoRows) {
		utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: notFoundMsg})
		return
	}
	logrus.WithError(err).Error("store query failed")
	utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
}

// ListMeals handles GET /api/meals with the optional filter parameters.
func (mc *MealController) ListMeals(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := store.ParseMealQuery(r.URL.Query())
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}

		meals, err := s.List(r.Context(), query)
		if err != nil {
			logrus.WithError(err).Error("failed to list meals")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
			return
		}
		utils.ResponseJSON(w, meals)
	}
}

// CreateMeal handles POST /api/meals.
func (mc *MealController) CreateMeal(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload MealPayload
		if err := decodeBody(r, &payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: validationMessage(err)})
			return
		}

		when, err := utils.ParseTimestamp(payload.When)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "when must be a valid timestamp"})
			return
		}
		if !when.After(time.Now()) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "when must be a future date"})
			return
		}
		createdDate, err := utils.ParseTimestamp(payload.CreatedDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "created_date must be a valid timestamp"})
			return
		}

		meal := &models.Meal{
			Title:           payload.Title,
			Description:     payload.Description,
			Location:        payload.Location,
			When:            when,
			MaxReservations: *payload.MaxReservations,
			Price:           *payload.Price,
			CreatedDate:     createdDate,
		}
		saved, err := s.Create(r.Context(), meal)
		if err != nil {
			logrus.WithError(err).Error("failed to create meal")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
			return
		}

		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]interface{}{
			"message": "Record added successfully",
			"Meal":    saved,
		})
	}
}

// GetMeal handles GET /api/meals/{id}.
func (mc *MealController) GetMeal(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid meal ID"})
			return
		}

		meal, err := s.Get(r.Context(), id)
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, meal)
	}
}

// UpdateMeal handles PUT /api/meals/{id}.
func (mc *MealController) UpdateMeal(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid meal ID"})
			return
		}

		var payload MealUpdatePayload
		if err := decodeBody(r, &payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: validationMessage(err)})
			return
		}

		when, err := utils.ParseTimestamp(payload.When)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "when must be a valid timestamp"})
			return
		}
		if !when.After(time.Now()) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "when must be a future date"})
			return
		}

		meal := &models.Meal{
			Title:           payload.Title,
			Description:     payload.Description,
			Location:        payload.Location,
			When:            when,
			MaxReservations: *payload.MaxReservations,
			Price:           *payload.Price,
		}
		updated, err := s.Update(r.Context(), id, meal)
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, updated)
	}
}

// DeleteMeal handles DELETE /api/meals/{id} and echoes the removed row.
func (mc *MealController) DeleteMeal(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid meal ID"})
			return
		}

		deleted, err := s.Delete(r.Context(), id)
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{
			"message":     fmt.Sprintf("Meal with ID %d deleted successfully", id),
			"deletedMeal": deleted,
		})
	}
}

// FutureMeals handles GET /future-meals.
func (mc *MealController) FutureMeals(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meals, err := s.Future(r.Context())
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, meals)
	}
}

// PastMeals handles GET /past-meals.
func (mc *MealController) PastMeals(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meals, err := s.Past(r.Context())
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, meals)
	}
}

// AllMeals handles GET /all-meals.
func (mc *MealController) AllMeals(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meals, err := s.All(r.Context())
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, meals)
	}
}

// FirstMeal handles GET /first-meal.
func (mc *MealController) FirstMeal(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meal, err := s.First(r.Context())
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, meal)
	}
}

// LastMeal handles GET /last-meal.
func (mc *MealController) LastMeal(s *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meal, err := s.Last(r.Context())
		if err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}
		utils.ResponseJSON(w, meal)
	}
}
