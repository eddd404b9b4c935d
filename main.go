package main

import (
	"net/http"
	"os"

	"meal-sharing/driver"
	"meal-sharing/routes"
	"meal-sharing/store"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db := driver.ConnectDB()
	defer db.Close()

	dialect := goqu.Dialect("mysql")
	mealStore := store.NewMealStore(db, dialect)
	reservationStore := store.NewReservationStore(db, dialect)
	reviewStore := store.NewReviewStore(db, dialect)

	router := mux.NewRouter()
	routes.Register(router, mealStore, reservationStore, reviewStore)

	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
	handler = handlers.LoggingHandler(os.Stdout, handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	logrus.Infof("API listening on port %s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, handler))
}
