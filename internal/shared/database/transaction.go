package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn inside a transaction with ctx already bound to the
// tx handle. Returning an error from fn rolls back; nil commits. Repositories
// may still call WithContext on the handle, which is safe and keeps their
// signature uniform for transactional and plain DB handles.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
