package kbbi

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Bucket groups every corpus entry sharing a normalized lemma key.
type Bucket struct {
	// Lemmas are the original-case spellings, sorted once building completes.
	Lemmas []string `json:"lemmas"`
	// Definitions are flat "[class] description" strings, deduplicated in
	// first-seen order.
	Definitions []string `json:"definitions"`
}

// OfflineIndex is the normalized-lemma index over the ingested shard corpus.
// It is immutable once built and safe for concurrent reads.
type OfflineIndex struct {
	buckets map[string]*Bucket
	trie    *patricia.Trie
	loaded  int
}

// BuildOfflineIndex constructs the index from ingested raw entries. Entries
// without a resolvable lemma, or whose normalized key is empty, are skipped.
func BuildOfflineIndex(entries []map[string]any) *OfflineIndex {
	ix := &OfflineIndex{
		buckets: make(map[string]*Bucket),
		trie:    patricia.NewTrie(),
		loaded:  len(entries),
	}
	seenDefs := make(map[string]map[string]struct{})
	variants := make(map[string]map[string]struct{})

	for _, entry := range entries {
		lemma := entryLemma(entry)
		if lemma == "" {
			continue
		}
		key := Normalize(lemma)
		if key == "" {
			continue
		}

		bucket := ix.buckets[key]
		if bucket == nil {
			bucket = &Bucket{}
			ix.buckets[key] = bucket
			seenDefs[key] = make(map[string]struct{})
			variants[key] = make(map[string]struct{})
			ix.trie.Insert(patricia.Prefix(key), struct{}{})
		}
		variants[key][lemma] = struct{}{}

		for _, def := range entryDefinitions(entry) {
			if _, dup := seenDefs[key][def]; dup {
				continue
			}
			seenDefs[key][def] = struct{}{}
			bucket.Definitions = append(bucket.Definitions, def)
		}
	}

	// Finalize variant sets into sorted slices.
	for key, set := range variants {
		lemmas := make([]string, 0, len(set))
		for v := range set {
			lemmas = append(lemmas, v)
		}
		sort.Strings(lemmas)
		ix.buckets[key].Lemmas = lemmas
	}
	return ix
}

// entryDefinitions flattens an entry's senses into bracketed definition
// strings. A sense that is a bare string (some dumps do this) contributes
// itself verbatim.
func entryDefinitions(entry map[string]any) []string {
	list, ok := entry["makna"].([]any)
	if !ok {
		return nil
	}
	var defs []string
	for _, it := range list {
		m, ok := it.(map[string]any)
		if !ok {
			if s := trimmedString(it); s != "" {
				defs = append(defs, s)
			}
			continue
		}
		class := classLabel(m)
		for _, sub := range subMeanings(m) {
			defs = append(defs, formatDefinition(class, sub))
		}
	}
	return defs
}

// Lookup returns the bucket for a normalized key.
func (ix *OfflineIndex) Lookup(key string) (*Bucket, bool) {
	b, ok := ix.buckets[key]
	return b, ok
}

// Len returns the number of distinct normalized keys.
func (ix *OfflineIndex) Len() int { return len(ix.buckets) }

// EntriesLoaded returns how many raw entries the index was built from.
func (ix *OfflineIndex) EntriesLoaded() int { return ix.loaded }

// SuggestPrefix returns up to limit normalized keys starting with prefix,
// in lexicographic order.
func (ix *OfflineIndex) SuggestPrefix(prefix string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	var keys []string
	_ = ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		keys = append(keys, string(p))
		return nil
	})
	sort.Strings(keys)
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
