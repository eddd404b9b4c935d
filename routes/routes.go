package routes

import (
	"meal-sharing/controllers"
	"meal-sharing/store"

	"github.com/gorilla/mux"
)

// Register wires every API route onto the router with the injected stores.
func Register(router *mux.Router, meals *store.MealStore, reservations *store.ReservationStore, reviews *store.ReviewStore) {
	mealController := controllers.MealController{}
	reservationController := controllers.ReservationController{}
	reviewController := controllers.ReviewController{}

	router.HandleFunc("/api/meals", mealController.ListMeals(meals)).Methods("GET")
	router.HandleFunc("/api/meals", mealController.CreateMeal(meals)).Methods("POST")
	router.HandleFunc("/api/meals/{id}", mealController.GetMeal(meals)).Methods("GET")
	router.HandleFunc("/api/meals/{id}", mealController.UpdateMeal(meals)).Methods("PUT")
	router.HandleFunc("/api/meals/{id}", mealController.DeleteMeal(meals)).Methods("DELETE")

	router.HandleFunc("/api/reservations", reservationController.ListReservations(reservations)).Methods("GET")
	router.HandleFunc("/api/reservations", reservationController.CreateReservation(reservations)).Methods("POST")
	router.HandleFunc("/api/reservations/{id}", reservationController.GetReservation(reservations)).Methods("GET")
	router.HandleFunc("/api/reservations/{id}", reservationController.UpdateReservation(reservations)).Methods("PUT")
	router.HandleFunc("/api/reservations/{id}", reservationController.DeleteReservation(reservations)).Methods("DELETE")

	router.HandleFunc("/api/reviews", reviewController.ListReviews(reviews)).Methods("GET")
	router.HandleFunc("/api/reviews", reviewController.CreateReview(reviews)).Methods("POST")
	router.HandleFunc("/api/reviews/{meal_id}/reviews", reviewController.ListReviewsForMeal(reviews, meals)).Methods("GET")
	router.HandleFunc("/api/reviews/{id}", reviewController.GetReview(reviews)).Methods("GET")
	router.HandleFunc("/api/reviews/{id}", reviewController.UpdateReview(reviews)).Methods("PUT")
	router.HandleFunc("/api/reviews/{id}", reviewController.DeleteReview(reviews)).Methods("DELETE")

	router.HandleFunc("/future-meals", mealController.FutureMeals(meals)).Methods("GET")
	router.HandleFunc("/past-meals", mealController.PastMeals(meals)).Methods("GET")
	router.HandleFunc("/all-meals", mealController.AllMeals(meals)).Methods("GET")
	router.HandleFunc("/first-meal", mealController.FirstMeal(meals)).Methods("GET")
	router.HandleFunc("/last-meal", mealController.LastMeal(meals)).Methods("GET")
}
