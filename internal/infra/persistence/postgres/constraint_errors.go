package postgres

import (
	"context"
	"strings"

	"hive/internal/errors"

	"gorm.io/gorm"
)

type violation int

const (
	noViolation violation = iota
	uniqueViolation
	foreignKeyViolation
	notNullViolation
)

// classify maps a driver error to the constraint it broke. gorm only
// translates errors when TranslateError is on, so the PostgreSQL SQLSTATE
// and the SQLite wording are matched as well.
func classify(err error) violation {
	switch {
	case err == nil:
		return noViolation
	case errors.Is(err, gorm.ErrDuplicatedKey) || mentions(err, "duplicate key", "unique constraint", "23505"):
		return uniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated) || mentions(err, "foreign key", "23503"):
		return foreignKeyViolation
	case mentions(err, "null value", "not null", "23502"):
		return notNullViolation
	default:
		return noViolation
	}
}

func mentions(err error, patterns ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}

// first loads the single row matching query into a new M, turning gorm's
// not-found into notFound.
func first[M any](ctx context.Context, db *gorm.DB, notFound error, query string, args ...any) (*M, error) {
	var row M
	if err := db.WithContext(ctx).Where(query, args...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, errors.WithStack(err)
	}

	return &row, nil
}
