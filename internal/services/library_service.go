// Package services – LibraryService
//
// This file implements the LibraryService, which manages the bookshelf
// catalog. It validates and normalizes record fields and coordinates
// repository operations for creating, listing (with pagination), updating,
// deleting, and exporting catalog rows.
//
// Service-level errors (e.g., ErrBookNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/nandika/go-kamus-backend/internal/domain"
)

// BookRepo defines the repository contract required by LibraryService.
// Implementations are responsible for persistence of catalog records.
type BookRepo interface {
	// CreateBook inserts a new catalog row with a generated primary key.
	CreateBook(ctx context.Context, db *gorm.DB, author, title, year string) (*domain.Book, error)

	// ListBooks returns the whole catalog in export order.
	ListBooks(ctx context.Context, db *gorm.DB) ([]domain.Book, error)

	// GetBook fetches a record by its six-letter primary key.
	GetBook(ctx context.Context, db *gorm.DB, pk string) (*domain.Book, error)

	// UpdateBook updates the mutable fields of a record.
	UpdateBook(ctx context.Context, db *gorm.DB, pk, author, title, year string) error

	// DeleteBook removes a record by primary key.
	DeleteBook(ctx context.Context, db *gorm.DB, pk string) error

	// CountBooks returns the total number of rows for pagination.
	CountBooks(ctx context.Context, db *gorm.DB) (int64, error)

	// ListBooksPage returns a page of the catalog.
	ListBooksPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Book, error)
}

// LibraryService provides catalog-level operations. It enforces field rules
// and delegates persistence to the repository.
type LibraryService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the book repository used by this service.
	Repo BookRepo
}

// NewLibraryService constructs a LibraryService.
func NewLibraryService(db *gorm.DB, r BookRepo) *LibraryService {
	return &LibraryService{DB: db, Repo: r}
}

// yearRE matches the only accepted publication-year form.
var yearRE = regexp.MustCompile(`^\d{4}$`)

// validate normalizes and checks the mutable catalog fields, returning the
// cleaned values.
func validate(author, title, year string) (string, string, string, error) {
	author = collapseSpaces(author)
	title = collapseSpaces(title)
	year = strings.TrimSpace(year)
	if author == "" || title == "" || year == "" {
		return "", "", "", ErrMissingField
	}
	if !yearRE.MatchString(year) {
		return "", "", "", ErrInvalidYear
	}
	return author, title, year, nil
}

// Create inserts a new catalog record after validating its fields.
func (s *LibraryService) Create(ctx context.Context, author, title, year string) (*domain.Book, error) {
	author, title, year, err := validate(author, title, year)
	if err != nil {
		return nil, err
	}
	return s.Repo.CreateBook(ctx, s.DB, author, title, year)
}

// List returns the whole catalog (non-paginated), used by the export
// endpoint. Prefer ListPage for interactive listings.
func (s *LibraryService) List(ctx context.Context) ([]domain.Book, error) {
	return s.Repo.ListBooks(ctx, s.DB)
}

// ListPage returns a page of the catalog (paginated).
// It applies defaults for invalid page/pageSize and returns total count.
func (s *LibraryService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Book, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountBooks(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Book{}, 0, nil
	}

	items, err := s.Repo.ListBooksPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Get fetches a single record by primary key, mapping the repository miss to
// ErrBookNotFound.
func (s *LibraryService) Get(ctx context.Context, pk string) (*domain.Book, error) {
	b, err := s.Repo.GetBook(ctx, s.DB, pk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

// Update validates the new field values and updates an existing record.
func (s *LibraryService) Update(ctx context.Context, pk, author, title, year string) error {
	author, title, year, err := validate(author, title, year)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateBook(ctx, s.DB, pk, author, title, year); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}

// Delete removes a record by primary key.
func (s *LibraryService) Delete(ctx context.Context, pk string) error {
	if err := s.Repo.DeleteBook(ctx, s.DB, pk); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}

// exportFieldWidth is the fixed column width for author and title in the
// plain-text export.
const exportFieldWidth = 90

// RenderExportTXT renders catalog rows in the legacy fixed-width text format
// used by the plain-text export: author and title occupy exactly ninety
// columns (padded or truncated) so rows line up in a terminal.
func RenderExportTXT(books []domain.Book) string {
	var sb strings.Builder
	for _, b := range books {
		fmt.Fprintf(&sb, " %s, %s, %-90s, %-90s, %s\n",
			b.PK, b.DateAdd, truncate(b.Author, exportFieldWidth), truncate(b.Title, exportFieldWidth), b.Year)
	}
	return sb.String()
}

// truncate clips s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// collapseSpaces trims whitespace and collapses multiple spaces to one.
func collapseSpaces(s string) string {
	s = whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
	return s
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
