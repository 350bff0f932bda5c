// Dictionary HTTP handlers.
//
// This file exposes REST endpoints for the lookup pipeline:
//   - GET  /kbbi/cek?kata=...   (resolve a word)
//   - POST /kbbi/reload         (rebuild the offline index)
//   - GET  /kbbi/stats          (corpus/index introspection)
//
// Handlers are transport-thin: they validate input, call the resolution
// engine, and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nandika/go-kamus-backend/internal/kbbi"
)

//
// Service contracts (context-aware)
//

// DictionaryService defines the lookup operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DictionaryService interface {
	// Resolve runs the fallback chain for word on behalf of clientID.
	Resolve(ctx context.Context, word, clientID string) (kbbi.Result, error)
	// Reload invalidates and rebuilds the offline index, returning its size.
	Reload() int
	// Stats reports corpus and index sizes.
	Stats() kbbi.Stats
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for the dictionary and the library catalog.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	dictSvc DictionaryService
	libSvc  LibraryService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(dictSvc DictionaryService, libSvc LibraryService) *Handlers {
	return &Handlers{dictSvc: dictSvc, libSvc: libSvc}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// ReloadResponse reports the result of an index rebuild.
type ReloadResponse struct {
	// IndexSize is the number of distinct keys after the rebuild.
	IndexSize int `json:"index_size" example:"52740"`
}

//
// Handlers
//

// CheckWord godoc
// @ID          checkWord
// @Summary     Look up a word
// @Description Resolves a word through the source chain (remote, word database,
// @Description built-in corpus, offline shards). A miss returns 404 with the
// @Description same payload shape carrying suggestions.
// @Tags        Dictionary
// @Produce     json
//
// @Param       kata  query  string  true  "Word to look up"  example(pijar)
//
// @Success     200  {object}  kbbi.Result
// @Failure     400  {object}  handlers.ErrorResponse  "Missing query"
// @Failure     404  {object}  kbbi.Result             "Word not found (payload carries suggestions)"
// @Failure     429  {object}  handlers.ErrorResponse  "Lookup limit exceeded"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /kbbi/cek [get]
func (h *Handlers) CheckWord(c *gin.Context) {
	word := c.Query("kata")

	res, err := h.dictSvc.Resolve(c.Request.Context(), word, c.ClientIP())
	switch {
	case err == nil:
		ok(c, http.StatusOK, res)
	case errors.Is(err, kbbi.ErrEmptyQuery):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter 'kata' is required")
	case errors.Is(err, kbbi.ErrRateLimited):
		c.Header("Retry-After", "60")
		fail(c, http.StatusTooManyRequests, ErrCodeRateLimited, "lookup limit exceeded, try again later")
	case errors.Is(err, kbbi.ErrWordNotFound):
		// The miss payload keeps the success shape so clients can render
		// suggestions uniformly.
		ok(c, http.StatusNotFound, res)
	default:
		fail(c, http.StatusInternalServerError, ErrCodeLookupFailed, err.Error())
	}
}

// ReloadIndex godoc
// @ID          reloadIndex
// @Summary     Rebuild the offline index
// @Description Drops the offline index and the result cache, re-ingests the
// @Description corpus shards, and returns the new index size.
// @Tags        Dictionary
// @Produce     json
//
// @Success     200  {object}  handlers.ReloadResponse
// @Router      /kbbi/reload [post]
func (h *Handlers) ReloadIndex(c *gin.Context) {
	size := h.dictSvc.Reload()
	ok(c, http.StatusOK, ReloadResponse{IndexSize: size})
}

// IndexStats godoc
// @ID          indexStats
// @Summary     Corpus and index statistics
// @Description Returns shard file counts and index sizes for monitoring.
// @Tags        Dictionary
// @Produce     json
//
// @Success     200  {object}  kbbi.Stats
// @Router      /kbbi/stats [get]
func (h *Handlers) IndexStats(c *gin.Context) {
	ok(c, http.StatusOK, h.dictSvc.Stats())
}
