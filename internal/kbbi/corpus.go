package kbbi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Raw corpus records are decoded into untyped maps because shard shapes vary
// wildly across dumps; typed decoding would reject most of the real data.

var entryContainerKeys = []string{"entri", "entries"}

var wrapperKeys = []string{"data", "daftar", "list", "result", "results"}

// containerOrWrapper reports whether key is handled by a dedicated branch of
// the extraction walk and must be skipped by the generic recursion.
func containerOrWrapper(key string) bool {
	for _, k := range entryContainerKeys {
		if key == k {
			return true
		}
	}
	for _, k := range wrapperKeys {
		if key == k {
			return true
		}
	}
	return false
}

// Ingestor reads one or more JSON corpus shards and extracts a flat list of
// entry-shaped raw records. It never fails: unreadable files and malformed
// fragments are logged and skipped, and whatever was recovered is returned.
type Ingestor struct {
	glob string
	log  zerolog.Logger
}

// NewIngestor creates an Ingestor over the shard files matching glob.
func NewIngestor(glob string, log zerolog.Logger) *Ingestor {
	return &Ingestor{glob: glob, log: log}
}

// FileCount returns the number of shard files currently matching the glob.
func (g *Ingestor) FileCount() int {
	paths, err := filepath.Glob(g.glob)
	if err != nil {
		return 0
	}
	return len(paths)
}

// Load reads every shard (sorted by filename for determinism) and returns
// all recovered entry records.
func (g *Ingestor) Load() []map[string]any {
	paths, err := filepath.Glob(g.glob)
	if err != nil {
		g.log.Warn().Err(err).Str("glob", g.glob).Msg("corpus glob failed")
		return nil
	}
	sort.Strings(paths)

	ex := newExtractor()
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			g.log.Warn().Err(err).Str("file", p).Msg("corpus shard read failed")
			continue
		}
		docs := scanJSONStream(string(raw))
		if len(docs) == 0 {
			// Last resort: the whole file as a single document.
			var doc any
			if err := json.Unmarshal(raw, &doc); err != nil {
				g.log.Warn().Err(err).Str("file", p).Msg("corpus shard parse failed")
				continue
			}
			docs = []any{doc}
		}
		for _, doc := range docs {
			ex.walk(doc)
		}
	}
	return ex.out
}

// scanJSONStream decodes back-to-back JSON documents from text. A decode
// failure advances one byte and retries, so a corrupt region loses at most
// the record it covers instead of aborting the whole file.
func scanJSONStream(text string) []any {
	var docs []any
	idx := 0
	n := len(text)
	for idx < n {
		for idx < n && isJSONSpace(text[idx]) {
			idx++
		}
		if idx >= n {
			break
		}
		dec := json.NewDecoder(strings.NewReader(text[idx:]))
		var v any
		if err := dec.Decode(&v); err != nil {
			idx++
			continue
		}
		docs = append(docs, v)
		idx += int(dec.InputOffset())
	}
	return docs
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// extractor walks decoded documents and collects entry records. The visited
// set is keyed by the pointer identity of each decoded map, a stable
// structural identity for the lifetime of the slice, so a record reachable
// via several paths is captured once.
type extractor struct {
	seen map[uintptr]struct{}
	out  []map[string]any
}

func newExtractor() *extractor {
	return &extractor{seen: make(map[uintptr]struct{})}
}

func recordID(m map[string]any) uintptr {
	return reflect.ValueOf(m).Pointer()
}

// looksLikeEntry reports whether a record carries a senses field plus one of
// the known name/lemma fields. Used to capture entries nested at arbitrary
// depths that are never reached through a container key.
func looksLikeEntry(m map[string]any) bool {
	if _, ok := m["makna"]; !ok {
		return false
	}
	for _, k := range []string{"nama", "lema", "kata"} {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func (e *extractor) capture(m map[string]any) {
	id := recordID(m)
	if _, dup := e.seen[id]; dup {
		return
	}
	e.seen[id] = struct{}{}
	e.out = append(e.out, m)
}

func (e *extractor) walk(v any) {
	switch t := v.(type) {
	case map[string]any:
		// Entry container keys contribute their structured elements directly.
		for _, key := range entryContainerKeys {
			if list, ok := t[key].([]any); ok {
				for _, it := range list {
					if m, ok := it.(map[string]any); ok {
						e.capture(m)
					}
				}
			}
		}
		// Known wrapper keys are recursed into; real corpora nest entry
		// groups at inconsistent depths under these.
		for _, key := range wrapperKeys {
			if inner, ok := t[key]; ok {
				e.walk(inner)
			}
		}
		// Everything else is recursed into generically. Keys are visited in
		// sorted order so the captured entry sequence is stable across loads
		// (map iteration order would reshuffle it).
		rest := make([]string, 0, len(t))
		for k := range t {
			if containerOrWrapper(k) {
				continue
			}
			rest = append(rest, k)
		}
		sort.Strings(rest)
		for _, k := range rest {
			e.walk(t[k])
		}
		if looksLikeEntry(t) {
			e.capture(t)
		}
	case []any:
		for _, it := range t {
			e.walk(it)
		}
	}
}
