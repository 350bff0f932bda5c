package kbbi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordDB indexes the keyed word-database shards. Three parallel mappings
// cover the same raw record set: by normalized top-level key, by normalized
// embedded lemma (first writer wins), and normalized key back to the
// original-case key for suggestion display. Raw records stay opaque and are
// transformed into display payloads on demand.
type WordDB struct {
	byKey   map[string]map[string]any
	byLema  map[string]map[string]any
	origKey map[string]string
	trie    *patricia.Trie
	size    int
}

// LoadWordDB reads every shard matching glob (sorted by filename), merges
// their top-level objects with first-shard-wins semantics on duplicate keys,
// and builds the three mappings. Unreadable or malformed shards are logged
// and skipped.
func LoadWordDB(glob string, log zerolog.Logger) *WordDB {
	combined := make(map[string]any)
	paths, err := filepath.Glob(glob)
	if err != nil {
		log.Warn().Err(err).Str("glob", glob).Msg("word db glob failed")
		paths = nil
	}
	sort.Strings(paths)
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			log.Warn().Err(err).Str("file", p).Msg("word db shard read failed")
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			log.Warn().Err(err).Str("file", p).Msg("word db shard parse failed")
			continue
		}
		for k, v := range obj {
			// First shard wins; later shards must not overwrite.
			if _, exists := combined[k]; !exists {
				combined[k] = v
			}
		}
	}

	db := &WordDB{
		byKey:   make(map[string]map[string]any, len(combined)),
		byLema:  make(map[string]map[string]any),
		origKey: make(map[string]string, len(combined)),
		trie:    patricia.NewTrie(),
		size:    len(combined),
	}
	for k, v := range combined {
		rec, ok := v.(map[string]any)
		if !ok {
			continue
		}
		nk := Normalize(k)
		if nk != "" {
			db.byKey[nk] = rec
			db.origKey[nk] = k
			db.trie.Insert(patricia.Prefix(nk), k)
		}
		for _, ent := range recordEntries(rec) {
			nama := trimmedString(ent["nama"])
			if nama == "" {
				nama = trimmedString(ent["lema"])
			}
			if nama == "" {
				continue
			}
			if ln := Normalize(nama); ln != "" {
				if _, exists := db.byLema[ln]; !exists {
					db.byLema[ln] = rec
				}
			}
		}
	}
	return db
}

// recordEntries returns the embedded entry list of a raw record
// (rec.data.entri).
func recordEntries(rec map[string]any) []map[string]any {
	data, _ := rec["data"].(map[string]any)
	if data == nil {
		return nil
	}
	list, _ := data["entri"].([]any)
	out := make([]map[string]any, 0, len(list))
	for _, it := range list {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Lookup resolves a normalized key against the top-level keys first, then
// the embedded lemmas.
func (db *WordDB) Lookup(key string) (map[string]any, bool) {
	if rec, ok := db.byKey[key]; ok {
		return rec, true
	}
	rec, ok := db.byLema[key]
	return rec, ok
}

// Size returns the number of merged top-level records.
func (db *WordDB) Size() int { return db.size }

// SuggestPrefix returns up to limit original-case keys whose normalized key
// starts with prefix, in lexicographic normalized-key order.
func (db *WordDB) SuggestPrefix(prefix string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	type pair struct{ norm, orig string }
	var pairs []pair
	_ = db.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		orig, _ := item.(string)
		pairs = append(pairs, pair{norm: string(p), orig: orig})
		return nil
	})
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].norm < pairs[j].norm })
	out := make([]string, 0, limit)
	for _, pr := range pairs {
		if len(out) >= limit {
			break
		}
		out = append(out, pr.orig)
	}
	return out
}

// TransformRecord turns a raw word-database record into display segments:
// the deduplicated lemma list, the flat definition strings, and the full
// entry breakdown. It is invoked fresh on every resolution.
func TransformRecord(rec map[string]any) (lemmas, definitions []string, entries []Entry) {
	lemmas = []string{}
	definitions = []string{}
	entries = []Entry{}
	seen := make(map[string]struct{})
	for _, ent := range recordEntries(rec) {
		lemma := trimmedString(ent["nama"])
		if lemma == "" {
			lemma = trimmedString(ent["lema"])
		}
		if lemma != "" {
			if _, dup := seen[lemma]; !dup {
				seen[lemma] = struct{}{}
				lemmas = append(lemmas, lemma)
			}
		}
		senses := entrySenses(ent)
		for _, s := range senses {
			definitions = append(definitions, formatDefinition(s.Class, s.Description))
		}
		if senses == nil {
			senses = []Sense{}
		}
		entries = append(entries, Entry{Lemma: lemma, Senses: senses})
	}
	return lemmas, definitions, entries
}
