package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"meal-sharing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMealsRejectsUnknownParams(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/meals?foo=1&maxPrice=10", nil)

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Invalid query parameter(s): foo", errorMessage(t, rec))
}

func TestListMealsSortedFilteredScenario(t *testing.T) {
	router, db := newTestServer(t)
	insertMeal(t, db, "Old", time.Date(2023, 3, 1, 18, 0, 0, 0, time.UTC), 5, 40)
	insertMeal(t, db, "Cheap", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC), 5, 30)
	insertMeal(t, db, "Pricy", time.Date(2027, 3, 1, 18, 0, 0, 0, time.UTC), 5, 95)

	rec := doRequest(t, router, http.MethodGet, "/api/meals?dateAfter=2024-01-01&sortKey=price&sortDir=desc", nil)

	requireStatus(t, rec, http.StatusOK)
	var meals []models.MealWithCount
	decodeInto(t, rec, &meals)
	require.Len(t, meals, 2)
	assert.Equal(t, "Pricy", meals[0].Title)
	assert.Equal(t, "Cheap", meals[1].Title)
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, meal := range meals {
		assert.True(t, meal.When.After(cutoff))
	}
}

func TestListMealsEmptyMatchesReturnEmptyArray(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/meals?title=nothing", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateMealAndReadBackRoundTrip(t *testing.T) {
	router, _ := newTestServer(t)

	payload := map[string]interface{}{
		"title":            "Lamb Meal",
		"description":      "Enjoy fresh lamb with friends!",
		"location":         "Tokyo",
		"when":             "2030-05-22T12:00:00",
		"max_reservations": 20,
		"price":            75.5,
		"created_date":     "2026-05-22T12:00:00",
	}
	rec := doRequest(t, router, http.MethodPost, "/api/meals", payload)

	requireStatus(t, rec, http.StatusCreated)
	var created struct {
		Message string      `json:"message"`
		Meal    models.Meal `json:"Meal"`
	}
	decodeInto(t, rec, &created)
	assert.Equal(t, "Record added successfully", created.Message)
	require.NotZero(t, created.Meal.ID)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/meals/%d", created.Meal.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	var fetched models.Meal
	decodeInto(t, rec, &fetched)
	assert.Equal(t, "Lamb Meal", fetched.Title)
	assert.Equal(t, "Tokyo", fetched.Location)
	assert.Equal(t, 20, fetched.MaxReservations)
	assert.Equal(t, 75.5, fetched.Price)
	assert.True(t, fetched.When.Equal(time.Date(2030, 5, 22, 12, 0, 0, 0, time.UTC)))
}

func TestCreateMealValidation(t *testing.T) {
	router, _ := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]interface{}
		wantErr string
	}{
		{
			name: "missing fields",
			payload: map[string]interface{}{
				"title": "Lamb Meal",
			},
			wantErr: "All fields are required",
		},
		{
			name: "non-positive max_reservations",
			payload: map[string]interface{}{
				"title": "Lamb Meal", "description": "d", "location": "l",
				"when": "2030-05-22T12:00:00", "max_reservations": -1,
				"price": 75.5, "created_date": "2026-05-22T12:00:00",
			},
			wantErr: "max_reservations must be greater than 0",
		},
		{
			name: "non-numeric price",
			payload: map[string]interface{}{
				"title": "Lamb Meal", "description": "d", "location": "l",
				"when": "2030-05-22T12:00:00", "max_reservations": 20,
				"price": "expensive", "created_date": "2026-05-22T12:00:00",
			},
			wantErr: "price must be a number",
		},
		{
			name: "past when",
			payload: map[string]interface{}{
				"title": "Lamb Meal", "description": "d", "location": "l",
				"when": "2020-05-22T12:00:00", "max_reservations": 20,
				"price": 75.5, "created_date": "2026-05-22T12:00:00",
			},
			wantErr: "when must be a future date",
		},
		{
			name: "unparseable when",
			payload: map[string]interface{}{
				"title": "Lamb Meal", "description": "d", "location": "l",
				"when": "someday", "max_reservations": 20,
				"price": 75.5, "created_date": "2026-05-22T12:00:00",
			},
			wantErr: "when must be a valid timestamp",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/meals", tc.payload)
			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, tc.wantErr, errorMessage(t, rec))
		})
	}
}

func TestGetMealInvalidAndMissingID(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/meals/abc", nil)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Invalid meal ID", errorMessage(t, rec))

	rec = doRequest(t, router, http.MethodGet, "/api/meals/999", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "Meal not found", errorMessage(t, rec))
}

func TestUpdateMealReturnsReloadedRow(t *testing.T) {
	router, db := newTestServer(t)
	id := insertMeal(t, db, "Before", time.Date(2030, 5, 1, 18, 0, 0, 0, time.UTC), 5, 50)

	payload := map[string]interface{}{
		"title": "After", "description": "d", "location": "l",
		"when": "2031-05-22T12:00:00", "max_reservations": 8, "price": 60.0,
	}
	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/meals/%d", id), payload)

	requireStatus(t, rec, http.StatusOK)
	var updated models.Meal
	decodeInto(t, rec, &updated)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 8, updated.MaxReservations)

	rec = doRequest(t, router, http.MethodPut, "/api/meals/999", payload)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteMealSemantics(t *testing.T) {
	router, db := newTestServer(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/meals/999", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "Meal not found", errorMessage(t, rec))

	id := insertMeal(t, db, "Doomed", time.Date(2030, 5, 1, 18, 0, 0, 0, time.UTC), 5, 50)
	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/meals/%d", id), nil)
	requireStatus(t, rec, http.StatusOK)
	var deleted struct {
		Message     string      `json:"message"`
		DeletedMeal models.Meal `json:"deletedMeal"`
	}
	decodeInto(t, rec, &deleted)
	assert.Equal(t, "Doomed", deleted.DeletedMeal.Title)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/meals/%d", id), nil)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestRecoveredMealEndpoints(t *testing.T) {
	router, db := newTestServer(t)
	past := insertMeal(t, db, "Past", time.Now().UTC().Add(-48*time.Hour), 5, 50)
	future := insertMeal(t, db, "Future", time.Now().UTC().Add(48*time.Hour), 5, 50)

	rec := doRequest(t, router, http.MethodGet, "/future-meals", nil)
	requireStatus(t, rec, http.StatusOK)
	var meals []models.Meal
	decodeInto(t, rec, &meals)
	require.Len(t, meals, 1)
	assert.Equal(t, future, meals[0].ID)

	rec = doRequest(t, router, http.MethodGet, "/past-meals", nil)
	requireStatus(t, rec, http.StatusOK)
	decodeInto(t, rec, &meals)
	require.Len(t, meals, 1)
	assert.Equal(t, past, meals[0].ID)

	rec = doRequest(t, router, http.MethodGet, "/all-meals", nil)
	requireStatus(t, rec, http.StatusOK)
	decodeInto(t, rec, &meals)
	assert.Len(t, meals, 2)

	rec = doRequest(t, router, http.MethodGet, "/first-meal", nil)
	requireStatus(t, rec, http.StatusOK)
	var meal models.Meal
	decodeInto(t, rec, &meal)
	assert.Equal(t, past, meal.ID)

	rec = doRequest(t, router, http.MethodGet, "/last-meal", nil)
	requireStatus(t, rec, http.StatusOK)
	decodeInto(t, rec, &meal)
	assert.Equal(t, future, meal.ID)
}

func TestFirstMealEmptyTable(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/first-meal", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "Meal not found", errorMessage(t, rec))
}
