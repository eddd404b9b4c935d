package driver

import (
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// ConnectDB opens and ping-verifies the MySQL connection described by the
// DB_* environment variables. The caller owns the handle and closes it on
// shutdown; nothing in this package keeps a reference.
func ConnectDB() *sqlx.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		envOr("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_HOST", "127.0.0.1"),
		envOr("DB_PORT", "3306"),
		envOr("DB_NAME", "meal_sharing"),
	)
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
