package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nandika/go-kamus-backend/internal/kbbi"
)

// ----- Fake dictionary service -----

type fakeDictSvc struct {
	res        kbbi.Result
	err        error
	lastWord   string
	lastClient string

	reloadSize int
	stats      kbbi.Stats
}

func (f *fakeDictSvc) Resolve(ctx context.Context, word, clientID string) (kbbi.Result, error) {
	f.lastWord, f.lastClient = word, clientID
	return f.res, f.err
}

func (f *fakeDictSvc) Reload() int       { return f.reloadSize }
func (f *fakeDictSvc) Stats() kbbi.Stats { return f.stats }

func newDictRouter(svc DictionaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, nil)
	r := gin.New()
	r.GET("/kbbi/cek", h.CheckWord)
	r.POST("/kbbi/reload", h.ReloadIndex)
	r.GET("/kbbi/stats", h.IndexStats)
	return r
}

func TestCheckWord_Success(t *testing.T) {
	svc := &fakeDictSvc{res: kbbi.Result{
		Valid:  true,
		Word:   "pijar",
		Source: kbbi.SourceFallback,
	}}
	r := newDictRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kbbi/cek?kata=pijar", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var res kbbi.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !res.Valid || res.Source != kbbi.SourceFallback {
		t.Errorf("unexpected body: %+v", res)
	}
	if svc.lastWord != "pijar" || svc.lastClient == "" {
		t.Errorf("service got word=%q client=%q", svc.lastWord, svc.lastClient)
	}
}

func TestCheckWord_EmptyQuery(t *testing.T) {
	r := newDictRouter(&fakeDictSvc{err: kbbi.ErrEmptyQuery})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kbbi/cek", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Code != ErrCodeBadRequest {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestCheckWord_RateLimited(t *testing.T) {
	r := newDictRouter(&fakeDictSvc{err: kbbi.ErrRateLimited})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kbbi/cek?kata=pijar", nil))

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestCheckWord_MissCarriesSuggestions(t *testing.T) {
	svc := &fakeDictSvc{
		res: kbbi.Result{Valid: false, Word: "pijrr", Suggestions: []string{"pijar"}, Error: "word not found"},
		err: kbbi.ErrWordNotFound,
	}
	r := newDictRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kbbi/cek?kata=pijrr", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var res kbbi.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("json: %v", err)
	}
	if res.Valid || len(res.Suggestions) != 1 || res.Suggestions[0] != "pijar" {
		t.Errorf("unexpected miss payload: %+v", res)
	}
}

func TestReloadIndex(t *testing.T) {
	r := newDictRouter(&fakeDictSvc{reloadSize: 123})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/kbbi/reload", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ReloadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.IndexSize != 123 {
		t.Errorf("index_size = %d, want 123", resp.IndexSize)
	}
}

func TestIndexStats(t *testing.T) {
	r := newDictRouter(&fakeDictSvc{stats: kbbi.Stats{FileCount: 2, IndexSize: 10}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kbbi/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var st kbbi.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("json: %v", err)
	}
	if st.FileCount != 2 || st.IndexSize != 10 {
		t.Errorf("unexpected stats: %+v", st)
	}
}
