package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory database with an sqlite-friendly schema
// mirroring the real tables.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	schema := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT,
			campus_id TEXT,
			face_template BLOB,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE buildings (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			address TEXT,
			transport_notes TEXT,
			parking_spots INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE resources (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL,
			capacity_units INTEGER NOT NULL DEFAULT 1,
			building_id TEXT,
			amenities TEXT,
			is_available INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner_id TEXT NOT NULL,
			resource_id TEXT,
			resource_name TEXT NOT NULL,
			category TEXT NOT NULL,
			date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			status TEXT NOT NULL,
			purpose TEXT,
			people_count INTEGER NOT NULL DEFAULT 1,
			check_in_at DATETIME,
			check_out_at DATETIME,
			confirmation_token TEXT NOT NULL UNIQUE,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE login_codes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL,
			code_hash TEXT NOT NULL,
			expires_at DATETIME NOT NULL,
			used_at DATETIME,
			created_at DATETIME
		);`,
		`CREATE TABLE access_records (
			id TEXT PRIMARY KEY,
			action TEXT NOT NULL,
			owner_id TEXT,
			resource_type TEXT,
			resource_id TEXT,
			success INTEGER NOT NULL,
			details TEXT,
			created_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}
