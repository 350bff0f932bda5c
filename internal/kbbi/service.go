package kbbi

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Service-level errors, translated to HTTP statuses by the handler layer.
var (
	// ErrEmptyQuery is returned when the caller supplies no query string.
	ErrEmptyQuery = errors.New("query word is empty")

	// ErrRateLimited is returned when the client exceeded its request
	// budget; no lookup source is consulted in that case.
	ErrRateLimited = errors.New("too many requests")

	// ErrWordNotFound is returned on a total miss across all sources (or a
	// definitive remote miss); the accompanying Result carries suggestions.
	ErrWordNotFound = errors.New("word not found")
)

// Config carries the Service construction parameters.
type Config struct {
	// CorpusGlob matches the offline corpus shard files.
	CorpusGlob string
	// WordDBGlob matches the word-database shard files.
	WordDBGlob string
	// CacheTTL bounds result-cache entry lifetime.
	CacheTTL time.Duration
	// RateMax and RateWindow configure the per-client sliding window.
	RateMax    int
	RateWindow time.Duration
	// SuggestionLimit caps the merged suggestion list on a total miss.
	SuggestionLimit int
	// Remote is the live dictionary source; nil disables the remote step.
	Remote RemoteClient
	// Logger receives source-failure warnings.
	Logger zerolog.Logger
}

// Service is the resolution engine. It owns all process-wide mutable lookup
// state (indices, cache, rate buckets) behind internal synchronization and
// is safe for concurrent use.
type Service struct {
	cfg      Config
	remote   RemoteClient
	fallback *FallbackCorpus
	cache    *ResultCache
	limiter  *SlidingWindowLimiter
	ingestor *Ingestor
	log      zerolog.Logger

	// mu guards the lazily built indices. Building happens under the lock
	// (build-once, serve-many); no lock is held across the remote call.
	mu      sync.Mutex
	offline *OfflineIndex
	wordDB  *WordDB
}

// NewService constructs a Service. Indices are not built here; the first
// resolution (or an explicit Reload) triggers the build.
func NewService(cfg Config) *Service {
	return &Service{
		cfg:      cfg,
		remote:   cfg.Remote,
		fallback: NewFallbackCorpus(),
		cache:    NewResultCache(cfg.CacheTTL),
		limiter:  NewSlidingWindowLimiter(cfg.RateMax, cfg.RateWindow),
		ingestor: NewIngestor(cfg.CorpusGlob, cfg.Logger),
		log:      cfg.Logger,
	}
}

// offlineIndex returns the offline index, building it on first access.
func (s *Service) offlineIndex() *OfflineIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offline == nil {
		s.offline = BuildOfflineIndex(s.ingestor.Load())
	}
	return s.offline
}

// wordIndex returns the word-database index, building it on first access.
func (s *Service) wordIndex() *WordDB {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wordDB == nil {
		s.wordDB = LoadWordDB(s.cfg.WordDBGlob, s.log)
	}
	return s.wordDB
}

// Resolve runs the fallback chain for word on behalf of clientID.
//
// Returns ErrEmptyQuery for blank input, ErrRateLimited when the client is
// over budget, ErrWordNotFound (with a suggestion-bearing Result) on a
// total or definitive miss, and otherwise the resolved payload.
func (s *Service) Resolve(ctx context.Context, word, clientID string) (Result, error) {
	tr := otel.Tracer("kbbi/Service")
	ctx, span := tr.Start(ctx, "Resolve",
		trace.WithAttributes(attribute.String("kbbi.word", word)),
	)
	defer span.End()

	word = strings.TrimSpace(word)
	if word == "" {
		return Result{}, ErrEmptyQuery
	}
	if !s.limiter.Allow(clientID) {
		return Result{}, ErrRateLimited
	}

	key := Normalize(word)
	if res, ok := s.cache.Get(key); ok {
		return res, nil
	}

	// 1) Remote source, queried with the raw word.
	if s.remote != nil {
		entri, err := s.remote.Lookup(ctx, word)
		switch {
		case err == nil:
			res := s.remoteResult(word, entri)
			s.cache.Put(key, res)
			return res, nil
		default:
			var nf *NotFoundError
			if errors.As(err, &nf) {
				// Definitive miss: terminal for the whole chain.
				saran := nf.Suggestions
				if len(saran) == 0 {
					saran = s.fallback.Suggest(word)
				}
				return s.missResult(word, saran), ErrWordNotFound
			}
			// Infrastructure failure: try the next source.
			s.log.Warn().Err(err).Str("word", word).Msg("remote lookup failed")
		}
	}

	// 2) Word-database index.
	if rec, ok := s.wordIndex().Lookup(key); ok {
		lemmas, defs, entries := TransformRecord(rec)
		res := Result{
			Valid:       true,
			Word:        word,
			Lemmas:      lemmas,
			Definitions: defs,
			Entries:     entries,
			Suggestions: []string{},
			Source:      SourceWordDB,
		}
		s.cache.Put(key, res)
		return res, nil
	}

	// 3) Built-in fallback corpus.
	if fe, ok := s.fallback.Lookup(key); ok {
		res := Result{
			Valid:       true,
			Word:        word,
			Lemmas:      fe.Lemmas,
			Definitions: fe.Definitions,
			Entries:     fe.Entries,
			Suggestions: []string{},
			Source:      SourceFallback,
		}
		s.cache.Put(key, res)
		return res, nil
	}

	// 4) Offline shard index. The ingested corpus lacks the structure for a
	// sense breakdown, so Entries stays empty here.
	if bucket, ok := s.offlineIndex().Lookup(key); ok {
		res := Result{
			Valid:       true,
			Word:        word,
			Lemmas:      bucket.Lemmas,
			Definitions: bucket.Definitions,
			Entries:     []Entry{},
			Suggestions: []string{},
			Source:      SourceOffline,
		}
		s.cache.Put(key, res)
		return res, nil
	}

	return s.missResult(word, s.suggestions(word, key)), ErrWordNotFound
}

// remoteResult reshapes the remote entry list into the common payload
// shape, deduplicating per-sense fields defensively.
func (s *Service) remoteResult(word string, entri []any) Result {
	entries := []Entry{}
	lemmaSet := make(map[string]struct{})
	definitions := []string{}
	for _, it := range entri {
		ent, ok := it.(map[string]any)
		if !ok {
			continue
		}
		lemma := entryLemma(ent)
		if lemma != "" {
			lemmaSet[lemma] = struct{}{}
		}
		senses := entrySenses(ent)
		for _, sn := range senses {
			definitions = append(definitions, formatDefinition(sn.Class, sn.Description))
		}
		if senses == nil {
			senses = []Sense{}
		}
		entries = append(entries, Entry{Lemma: lemma, Senses: senses})
	}
	lemmas := make([]string, 0, len(lemmaSet))
	for l := range lemmaSet {
		lemmas = append(lemmas, l)
	}
	sort.Strings(lemmas)
	return Result{
		Valid:       true,
		Word:        word,
		Lemmas:      lemmas,
		Definitions: definitions,
		Entries:     entries,
		Suggestions: []string{},
		Source:      SourceRemote,
	}
}

// missResult builds the not-found payload.
func (s *Service) missResult(word string, suggestions []string) Result {
	if suggestions == nil {
		suggestions = []string{}
	}
	return Result{
		Valid:       false,
		Word:        word,
		Suggestions: suggestions,
		Error:       "word not found",
	}
}

// suggestions merges suggestion candidates from every source on a total
// miss: built-in corpus first, then word-database original keys, then
// offline index keys, both by two-character normalized prefix. Each source
// is deduplicated against what was already collected, and the merge stops
// once the cap is reached.
func (s *Service) suggestions(word, key string) []string {
	limit := s.cfg.SuggestionLimit
	prefix := keyPrefix(key, 2)

	merged := make([]string, 0, limit)
	merged = appendUnique(merged, s.fallback.Suggest(word), limit)
	if len(merged) < limit {
		merged = appendUnique(merged, s.wordIndex().SuggestPrefix(prefix, limit), limit)
	}
	if len(merged) < limit {
		merged = appendUnique(merged, s.offlineIndex().SuggestPrefix(prefix, limit), limit)
	}
	return merged
}

// Reload invalidates the offline index and the result cache, forces a
// rebuild, and returns the new index size.
func (s *Service) Reload() int {
	s.mu.Lock()
	s.offline = nil
	s.mu.Unlock()
	s.cache.InvalidateAll()
	return s.offlineIndex().Len()
}

// Invalidate drops both indices and clears the cache; the next resolution
// rebuilds lazily. Used by the corpus watcher.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.offline = nil
	s.wordDB = nil
	s.mu.Unlock()
	s.cache.InvalidateAll()
}

// Stats reports corpus and index sizes for introspection.
func (s *Service) Stats() Stats {
	ix := s.offlineIndex()
	return Stats{
		FileCount:     s.ingestor.FileCount(),
		EntriesLoaded: ix.EntriesLoaded(),
		IndexSize:     ix.Len(),
		WordDBSize:    s.wordIndex().Size(),
	}
}
