// Package kbbi implements the dictionary lookup core: corpus ingestion,
// in-memory indices, the source fallback chain, result caching, and
// per-client rate limiting. The HTTP layer in internal/http is a thin
// transport wrapper around the Service in this package.
//
// Data flows through four sources in priority order: the remote dictionary
// API, the word-database index, a small built-in corpus, and the offline
// shard index. The first source to produce a positive match wins; a
// definitive "not found" from the remote source terminates the chain early.
package kbbi

// Source identifies which lookup source produced a result.
type Source string

// Known sources, in fallback-chain priority order.
const (
	SourceRemote   Source = "remote"
	SourceWordDB   Source = "word-db"
	SourceFallback Source = "fallback"
	SourceOffline  Source = "offline"
)

// Sense is one meaning of a dictionary entry.
type Sense struct {
	// Class is the part-of-speech code (e.g. "n", "v"); may be empty.
	Class       string   `json:"class"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Synonyms    []string `json:"synonyms"`
	Antonyms    []string `json:"antonyms"`
}

// Entry is a headword with its ordered senses.
type Entry struct {
	Lemma  string  `json:"lemma"`
	Senses []Sense `json:"senses"`
}

// Result is the payload produced by Service.Resolve. Valid discriminates
// hits from misses; on a miss only Word, Error and Suggestions are set.
type Result struct {
	Valid       bool     `json:"valid"`
	Word        string   `json:"word"`
	Lemmas      []string `json:"lemmas"`
	Definitions []string `json:"definitions"`
	Entries     []Entry  `json:"entries"`
	Suggestions []string `json:"suggestions"`
	Source      Source   `json:"source,omitempty"`
	CacheHit    bool     `json:"cache_hit"`
	Error       string   `json:"error,omitempty"`
}

// Stats is the introspection payload returned by Service.Stats.
type Stats struct {
	FileCount     int `json:"file_count"`
	EntriesLoaded int `json:"entries_loaded"`
	IndexSize     int `json:"index_size"`
	WordDBSize    int `json:"word_db_size"`
}
