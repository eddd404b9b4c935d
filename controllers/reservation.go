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

type ReservationController struct{}

// ListReservations handles GET /api/reservations.
func (rc *ReservationController) ListReservations(s *store.ReservationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := s.List(r.Context())
		if err != nil {
			logrus.WithError(err).Error("failed to list reservations")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
			return
		}
		utils.ResponseJSON(w, reservations)
	}
}

// CreateReservation handles POST /api/reservations. Remaining capacity on
// the meal is not checked; overbooking is left to the client.
func (rc *ReservationController) CreateReservation(s *store.ReservationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ReservationPayload
		if err := decodeBody(r, &payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: validationMessage(err)})
			return
		}

		createdDate, err := utils.ParseTimestamp(payload.CreatedDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "created_date must be a valid timestamp"})
			return
		}

		reservation := &models.Reservation{
			MealID:             *payload.MealID,
			NumberOfGuests:     *payload.NumberOfGuests,
			CreatedDate:        createdDate,
			ContactPhonenumber: payload.ContactPhonenumber,
			ContactName:        payload.ContactName,
			ContactEmail:       payload.ContactEmail,
		}
		saved, err := s.Create(r.Context(), reservation)
		if err != nil {
			logrus.WithError(err).Error("failed to create reservation")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Internal server error"})
			return
		}

		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]interface{}{
			"message":     "Record added successfully",
			"reservation": saved,
		})
	}
}

// GetReservation handles GET /api/reservations/{id}.
func (rc *ReservationController) GetReservation(s *store.ReservationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid reservation ID"})
			return
		}

		reservation, err := s.Get(r.Context(), id)
		if err != nil {
			respondStoreError(w, err, "Reservation not found")
			return
		}
		utils.ResponseJSON(w, reservation)
	}
}

// UpdateReservation handles PUT /api/reservations/{id}.
func (rc *ReservationController) UpdateReservation(s *store.ReservationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid reservation ID"})
			return
		}

		var payload ReservationUpdatePayload
		if err := decodeBody(r, &payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}
		if err := validate.Struct(payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: validationMessage(err)})
			return
		}

		reservation := &models.Reservation{
			MealID:             *payload.MealID,
			NumberOfGuests:     *payload.NumberOfGuests,
			ContactPhonenumber: payload.ContactPhonenumber,
			ContactName:        payload.ContactName,
			ContactEmail:       payload.ContactEmail,
		}
		updated, err := s.Update(r.Context(), id, reservation)
		if err != nil {
			respondStoreError(w, err, "Reservation not found")
			return
		}
		utils.ResponseJSON(w, updated)
	}
}

// DeleteReservation handles DELETE /api/reservations/{id}.
func (rc *ReservationController) DeleteReservation(s *store.ReservationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid reservation ID"})
			return
		}

		deleted, err := s.Delete(r.Context(), id)
		if err != nil {
			respondStoreError(w, err, "Reservation not found")
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{
			"message":            fmt.Sprintf("Reservation with ID %d deleted successfully", id),
			"deletedReservation": deleted,
		})
	}
}
