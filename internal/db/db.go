package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Configured indica si hay base de datos configurada (DB_NAME presente).
// La búsqueda funciona sin base de datos; solo el registro de enriquecimiento la usa.
func Configured() bool {
	return strings.TrimSpace(os.Getenv("DB_NAME")) != ""
}

// Connect returns a MariaDB/MySQL connection using env vars.
func Connect() (*sql.DB, error) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3306"
	}
	if name == "" {
		return nil, fmt.Errorf("DB_NAME not set")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8", user, pass, host, port, name)
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)

	return conn, nil
}

// EnsureSchema creates required tables if not exist.
func EnsureSchema(db *sql.DB) error {
	if skip := strings.TrimSpace(os.Getenv("DB_SKIP_SCHEMA")); strings.EqualFold(skip, "true") || skip == "1" {
		log.Printf("EnsureSchema: skipped (DB_SKIP_SCHEMA=%q)", skip)
		return nil
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS enrichment_runs (
			id CHAR(36) PRIMARY KEY,
			provider VARCHAR(32) NOT NULL,
			origin VARCHAR(100) NOT NULL,
			destination VARCHAR(100) NOT NULL,
			status VARCHAR(16) NOT NULL,
			routes_parsed INT NOT NULL DEFAULT 0,
			duration_ms BIGINT NOT NULL DEFAULT 0,
			error_message VARCHAR(500) NULL,
			started_at TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`); err != nil {
		return fmt.Errorf("create enrichment_runs: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX idx_enrichment_runs_provider_started ON enrichment_runs(provider, started_at);
	`); err != nil {
		errMsg := strings.ToLower(err.Error())
		if strings.Contains(errMsg, "duplicate") {
			// index already exists, nothing to do
		} else if strings.Contains(errMsg, "permission denied") {
			log.Printf("EnsureSchema: unable to create enrichment_runs index (permission denied): %v", err)
		} else {
			return fmt.Errorf("create enrichment_runs index: %w", err)
		}
	}

	return nil
}
