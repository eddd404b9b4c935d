package controllers

import (
	"fmt"
	"net/http"

	"meal-sharing/models"
	"meal-sharing/store"
	"meal-sharing/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ReviewController struct{}

// ListReviews handles GET /api/reviews.
func (rc *ReviewController) ListReviews(s *store.ReviewStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := s.List(r.Context())
		if err != nil {
			logrus.WithError(err).Error("failed to list reviews")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
			return
		}
		utils.ResponseJSON(w, reviews)
	}
}

// ListReviewsForMeal handles GET /api/reviews/{meal_id}/reviews. A missing
// meal is a 404; a meal with no reviews is an empty array.
func (rc *ReviewController) ListReviewsForMeal(reviews *store.ReviewStore, meals *store.MealStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mealID, err := utils.ParseID(mux.Vars(r)["meal_id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid meal ID"})
			return
		}

		if _, err := meals.Get(r.Context(), mealID); err != nil {
			respondStoreError(w, err, "Meal not found")
			return
		}

		list, err := reviews.ListByMeal(r.Context(), mealID)
		if err != nil {
			logrus.WithError(err).Error("failed to list reviews for meal")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
			return
		}
		utils.ResponseJSON(w, list)
	}
}

// CreateReview handles POST /api/reviews.
func (rc *ReviewController) CreateReview(s *store.ReviewStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ReviewPayload
		if err := decodeBody(r, &payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: validationMessage(err)})
			return
		}

		review := &models.Review{
			MealID:      *payload.MealID,
			Title:       payload.Title,
			Description: payload.Description,
			Stars:       *payload.Stars,
		}
		saved, err := s.Create(r.Context(), review)
		if err != nil {
			logrus.WithError(err).Error("failed to create review")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
			return
		}

		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]interface{}{
			"message":   "Record added successfully",
			"newReview": saved,
		})
	}
}

// GetReview handles GET /api/reviews/{id}.
func (rc *ReviewController) GetReview(s *store.ReviewStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid review ID"})
			return
		}

		review, err := s.Get(r.Context(), id)
		if err != nil {
			respondStoreError(w, err, "Review not found")
			return
		}
		utils.ResponseJSON(w, review)
	}
}

// UpdateReview handles PUT /api/reviews/{id}.
func (rc *ReviewController) UpdateReview(s *store.ReviewStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid review ID"})
			return
		}

		var payload ReviewPayload
		if err := decodeBody(r, &payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: validationMessage(err)})
			return
		}

		review := &models.Review{
			MealID:      *payload.MealID,
			Title:       payload.Title,
			Description: payload.Description,
			Stars:       *payload.Stars,
		}
		updated, err := s.Update(r.Context(), id, review)
		if err != nil {
			respondStoreError(w, err, "Review not found")
			return
		}
		utils.ResponseJSON(w, updated)
	}
}

// DeleteReview handles DELETE /api/reviews/{id}.
func (rc *ReviewController) DeleteReview(s *store.ReviewStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid review ID"})
			return
		}

		deleted, err := s.Delete(r.Context(), id)
		if err != nil {
			respondStoreError(w, err, "Review not found")
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{
			"message":       fmt.Sprintf("Review with ID %d deleted successfully", id),
			"deletedReview": deleted,
		})
	}
}
