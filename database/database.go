package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is a global variable to hold the database connection pool.
var DB *pgxpool.Pool

// Connect sets up the database connection pool.
func Connect(databaseURL string) {
	var err error
	DB, err = pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	// Optional: Check if the connection is actually working
	err = DB.Ping(context.Background())
	if err != nil {
		log.Fatalf("Database ping failed: %v\n", err)
	}

	log.Println("Successfully connected to the database")
}

// GetDB returns the shared connection pool.
func GetDB() *pgxpool.Pool {
	return DB
}

// Close closes the database connection pool.
func Close() {
	if DB != nil {
		DB.Close()
		log.Println("Database connection pool closed")
	}
}

// EnsureSchema creates the CRUD resource tables when they do not exist yet,
// so the demo backend can start against an empty database.
func EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS demand_records (
			id UUID PRIMARY KEY,
			product_name TEXT NOT NULL,
			store_id TEXT NOT NULL,
			period TEXT NOT NULL,
			forecast_units INT NOT NULL,
			actual_units INT,
			attributes JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS pricing_records (
			id UUID PRIMARY KEY,
			product_name TEXT NOT NULL,
			base_price NUMERIC(12,2) NOT NULL,
			discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
			effective_price NUMERIC(12,2) NOT NULL,
			currency TEXT NOT NULL DEFAULT 'INR',
			attributes JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS loyalty_records (
			id UUID PRIMARY KEY,
			customer_name TEXT NOT NULL,
			tier TEXT NOT NULL,
			points INT NOT NULL DEFAULT 0,
			attributes JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			contact_name TEXT,
			contact_email TEXT,
			contact_phone TEXT,
			address TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
