// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Book model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a book is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"crypto/rand"
	"time"

	"gorm.io/gorm"

	"github.com/nandika/go-kamus-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

const pkLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookPK generates the legacy six-letter random primary key.
func NewBookPK() string {
	buf := make([]byte, 6)
	// crypto/rand never fails on supported platforms; fall back to a fixed
	// byte so the slice is always fully populated.
	if _, err := rand.Read(buf); err != nil {
		for i := range buf {
			buf[i] = 0
		}
	}
	for i, b := range buf {
		buf[i] = pkLetters[int(b)%len(pkLetters)]
	}
	return string(buf)
}

// CreateBook inserts a new Book row with a generated six-letter primary key
// and a DateAdd stamp in the legacy catalog format. The randomly drawn key
// is retried a few times on the (unlikely) unique collision.
//
// On success, it returns the persisted Book. On failure, it returns a DB error.
func CreateBook(ctx context.Context, db *gorm.DB, author, title, year string) (*domain.Book, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		b := &domain.Book{
			PK:        NewBookPK(),
			DateAdd:   domain.FormatBookDate(time.Now()),
			Author:    author,
			Title:     title,
			Year:      year,
			CreatedAt: time.Now().UTC(),
		}
		if err := db.WithContext(ctx).Create(b).Error; err != nil {
			lastErr = err
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		return b, nil
	}
	return nil, lastErr
}

// ListBooks returns every catalog row ordered by creation time ascending
// (export order). It returns an empty slice when the catalog is empty.
func ListBooks(ctx context.Context, db *gorm.DB) ([]domain.Book, error) {
	var out []domain.Book
	err := db.WithContext(ctx).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// CountBooks returns the total number of catalog rows.
func CountBooks(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Book{}).
		Count(&total).Error
	return total, err
}

// ListBooksPage returns a paginated slice of the catalog, ordered by creation
// time descending (most recent first). Use CountBooks to obtain the total for
// pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListBooksPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Book, error) {
	var out []domain.Book
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetBook fetches a single book by its primary key. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetBook(ctx context.Context, db *gorm.DB, pk string) (*domain.Book, error) {
	var b domain.Book
	err := db.WithContext(ctx).
		Where("pk = ?", pk).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBook updates the mutable fields of a book identified by pk. If no
// rows are affected (record missing), it returns ErrNotFound. On DB error,
// the raw error is returned.
func UpdateBook(ctx context.Context, db *gorm.DB, pk, author, title, year string) error {
	res := db.WithContext(ctx).
		Model(&domain.Book{}).
		Where("pk = ?", pk).
		Updates(map[string]any{
			"author": author,
			"title":  title,
			"year":   year,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBook soft-deletes a book by primary key. If no rows are affected,
// it returns ErrNotFound.
func DeleteBook(ctx context.Context, db *gorm.DB, pk string) error {
	res := db.WithContext(ctx).
		Where("pk = ?", pk).
		Delete(&domain.Book{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
