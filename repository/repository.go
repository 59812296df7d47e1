// Package repository persists domain records through GORM. Every write
// touches updatedAt explicitly using the repository clock.
package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jarradburge/optivana-vanthex-monorepo/apperr"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"gorm.io/gorm"
)

type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// Migrate creates or updates every table the API owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Store{},
		&models.Product{},
		&models.Campaign{},
		&models.Alert{},
		&models.ActivityLog{},
	)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// translate maps driver errors onto the apperr taxonomy.
func translate(err error, op, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(notFound)
	case conflict != "" && isUniqueViolation(err):
		return apperr.Conflict(conflict, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
