// Package db opens the application's gorm connection.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "jobboard_backend/internal/feature/auth/domain/entity"
	jobsentity "jobboard_backend/internal/feature/jobs/domain/entity"
)

// OpenDB connects to postgres, retrying until the database accepts
// connections or the deadline passes. Containerized databases routinely
// come up after the application process does.
func OpenDB(dsn string, runMigrations bool) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&jobsentity.Company{},
			&jobsentity.Job{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
