package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"meal-sharing/routes"
	"meal-sharing/store"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE meal (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	location TEXT NOT NULL,
	` + "`when`" + ` DATETIME NOT NULL,
	max_reservations INTEGER NOT NULL,
	price REAL NOT NULL,
	created_date DATETIME NOT NULL
);
CREATE TABLE reservation (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	meal_id INTEGER NOT NULL,
	number_of_guests INTEGER NOT NULL,
	created_date DATETIME NOT NULL,
	contact_phonenumber TEXT NOT NULL,
	contact_name TEXT NOT NULL,
	contact_email TEXT NOT NULL
);
CREATE TABLE review (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	meal_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	stars INTEGER NOT NULL
);
`

// newTestServer wires the real route table onto an in-memory database.
func newTestServer(t *testing.T) (*mux.Router, *sqlx.DB) {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dialect := goqu.Dialect("sqlite3")
	router := mux.NewRouter()
	routes.Register(router,
		store.NewMealStore(db, dialect),
		store.NewReservationStore(db, dialect),
		store.NewReviewStore(db, dialect),
	)
	return router, db
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeInto(t, rec, &body)
	return body.Error
}

func insertMeal(t *testing.T, db *sqlx.DB, title string, when time.Time, maxReservations int, price float64) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO meal (title, description, location, `when`, max_reservations, price, created_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
		title, "a description", "somewhere", when, maxReservations, price, time.Now().UTC(),
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
