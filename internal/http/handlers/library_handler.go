// Library catalog HTTP handlers.
//
// This file exposes REST endpoints for the bookshelf catalog:
//   - GET    /library/books          (list, paginated, ETag support)
//   - POST   /library/books          (create, idempotent via Idempotency-Key)
//   - PUT    /library/books/{pk}     (update)
//   - DELETE /library/books/{pk}     (delete)
//   - GET    /library/books/export   (JSON or fixed-width TXT attachment)
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// create exists for (user, route, key), the handler replays the stored
// record and sets `Idempotency-Replayed: true`.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nandika/go-kamus-backend/internal/domain"
	"github.com/nandika/go-kamus-backend/internal/repo"
	"github.com/nandika/go-kamus-backend/internal/services"
	"github.com/nandika/go-kamus-backend/internal/utils"
)

// LibraryService defines catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type LibraryService interface {
	// Create inserts a new catalog record.
	Create(ctx context.Context, author, title, year string) (*domain.Book, error)
	// List returns the whole catalog (export order).
	List(ctx context.Context) ([]domain.Book, error)
	// ListPage returns a page of the catalog and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Book, int64, error)
	// Get fetches a record by primary key.
	Get(ctx context.Context, pk string) (*domain.Book, error)
	// Update replaces the mutable fields of a record.
	Update(ctx context.Context, pk, author, title, year string) error
	// Delete removes a record.
	Delete(ctx context.Context, pk string) error
}

//
// DTOs
//

// BookRequest is the JSON payload for creating or updating a catalog record.
// Field names follow the legacy Indonesian catalog vocabulary.
type BookRequest struct {
	Author string `json:"penulis" binding:"required" example:"Pramoedya Ananta Toer"`
	Title  string `json:"judul"   binding:"required" example:"Bumi Manusia"`
	Year   string `json:"tahun"   binding:"required" example:"1980"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListBooksResponse wraps a page of catalog rows and pagination information.
type ListBooksResponse struct {
	Books      []domain.Book `json:"books"`
	Pagination Pagination    `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// libraryDB exposes the GORM handle when the service is the concrete
// LibraryService (best-effort, used for ETag and idempotency lookups).
func (h *Handlers) libraryDB() *gorm.DB {
	if svc, ok := h.libSvc.(*services.LibraryService); ok {
		return svc.DB
	}
	return nil
}

// failBook maps service-level catalog errors onto HTTP responses.
func failBook(c *gin.Context, err error, fallbackCode string) {
	switch err {
	case services.ErrBookNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, "book not found")
	case services.ErrMissingField:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case services.ErrInvalidYear:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, fallbackCode, err.Error())
	}
}

//
// Handlers
//

// ListBooks godoc
// @ID          listBooks
// @Summary     List catalog records (paginated)
// @Description Returns a page of the catalog. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Library
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListBooksResponse
// @Header      200  {string} ETag           "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /library/books [get]
func (h *Handlers) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if db := h.libraryDB(); db != nil {
		count, maxTS, err := repo.BooksStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"books:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.libSvc.ListPage(ctx, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListBooksResponse{
		Books: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// CreateBook godoc
// @ID          createBook
// @Summary     Create a catalog record
// @Description Creates a record with a generated six-letter key. Supports
// @Description idempotency via the Idempotency-Key header (same key → same result).
// @Tags        Library
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.BookRequest  true  "Catalog record payload"
//
// @Success     201  {object} domain.Book
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /library/books [post]
func (h *Handlers) CreateBook(c *gin.Context) {
	ctx := c.Request.Context()

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "penulis, judul and tahun are required")
		return
	}

	currentUser := userID(c)
	scope := c.FullPath()

	// Idempotency (replay path) – read the key if present.
	idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if idemKey != "" {
		if db := h.libraryDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, currentUser, scope, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetBook(ctx, db, rec.ResourceID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, prev)
					return
				}
			}
		}
	}

	b, err := h.libSvc.Create(ctx, req.Author, req.Title, req.Year)
	if err != nil {
		failBook(c, err, ErrCodeCreateFailed)
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if db := h.libraryDB(); db != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, db, currentUser, scope, idemKey, b.PK, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, b)
}

// UpdateBook godoc
// @ID          updateBook
// @Summary     Update a catalog record
// @Description Replaces the author, title, and year of an existing record.
// @Tags        Library
// @Accept      json
// @Produce     json
//
// @Param       pk    path  string  true  "Record key (six letters)"  example(qwerty)
// @Param       body  body  handlers.BookRequest  true  "New field values"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Record not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /library/books/{pk} [put]
func (h *Handlers) UpdateBook(c *gin.Context) {
	pk := c.Param("pk")

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "penulis, judul and tahun are required")
		return
	}

	if err := h.libSvc.Update(c.Request.Context(), pk, req.Author, req.Title, req.Year); err != nil {
		failBook(c, err, ErrCodeInternal)
		return
	}
	noContent(c)
}

// DeleteBook godoc
// @ID          deleteBook
// @Summary     Delete a catalog record
// @Tags        Library
// @Produce     json
//
// @Param       pk  path  string  true  "Record key (six letters)"  example(qwerty)
//
// @Success     204  {string} string "No Content"
// @Failure     404  {object} handlers.ErrorResponse "Record not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /library/books/{pk} [delete]
func (h *Handlers) DeleteBook(c *gin.Context) {
	if err := h.libSvc.Delete(c.Request.Context(), c.Param("pk")); err != nil {
		failBook(c, err, ErrCodeInternal)
		return
	}
	noContent(c)
}

// ExportBooks godoc
// @ID          exportBooks
// @Summary     Export the catalog
// @Description Streams the whole catalog as a download. format=json returns the
// @Description records as a JSON array; format=txt returns the legacy fixed-width
// @Description text rendering.
// @Tags        Library
// @Produce     json
// @Produce     plain
//
// @Param       format  query  string  false  "Export format"  Enums(json, txt)  default(json)
//
// @Success     200  {array}  domain.Book
// @Failure     400  {object} handlers.ErrorResponse "Unknown format"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /library/books/export [get]
func (h *Handlers) ExportBooks(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "json")))
	if format != "json" && format != "txt" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "format must be json or txt")
		return
	}

	books, err := h.libSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeExportFailed, err.Error())
		return
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	if format == "txt" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="books-%s.txt"`, stamp))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(services.RenderExportTXT(books)))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="books-%s.json"`, stamp))
	ok(c, http.StatusOK, books)
}
