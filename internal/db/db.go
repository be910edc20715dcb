// internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// Connect opens the Postgres connection from env vars and returns the
// handle. Callers pass it down explicitly; there is no package global.
func Connect() *sql.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	log.Println("DB_USER:", user)
	log.Println("DB_NAME:", name)
	log.Println("DB_HOST:", host)

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name,
	)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err = conn.Ping(); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}

	log.Println("✅ Connected to database")
	return conn
}

// EnsureSchema creates the two tables if they do not exist yet.
func EnsureSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
        CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            phone_number TEXT NOT NULL UNIQUE
        )`)
	if err != nil {
		return err
	}

	_, err = conn.Exec(`
        CREATE TABLE IF NOT EXISTS addresses (
            id SERIAL PRIMARY KEY,
            customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
            address_details TEXT NOT NULL,
            city TEXT NOT NULL,
            state TEXT NOT NULL,
            pin_code TEXT NOT NULL
        )`)
	return err
}
