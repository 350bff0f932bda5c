package kbbi

import "sort"

// FallbackEntry is one record of the built-in corpus.
type FallbackEntry struct {
	Lemmas      []string
	Definitions []string
	Entries     []Entry
}

// FallbackCorpus is the small fixed in-memory corpus used as a last-resort
// dataset when the larger corpora are absent. Matching is exact on the
// normalized key only.
type FallbackCorpus struct {
	entries map[string]FallbackEntry
}

// NewFallbackCorpus returns the built-in corpus.
func NewFallbackCorpus() *FallbackCorpus {
	return &FallbackCorpus{entries: builtinEntries}
}

// Lookup returns the entry for a normalized key.
func (f *FallbackCorpus) Lookup(key string) (FallbackEntry, bool) {
	e, ok := f.entries[key]
	return e, ok
}

// Suggest returns up to five corpus keys sharing the first two normalized
// characters of word, sorted.
func (f *FallbackCorpus) Suggest(word string) []string {
	prefix := keyPrefix(Normalize(word), 2)
	var out []string
	for k := range f.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// keyPrefix returns the first n runes of key.
func keyPrefix(key string, n int) string {
	r := []rune(key)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

var builtinEntries = map[string]FallbackEntry{
	"pijar": {
		Lemmas: []string{"pijar"},
		Definitions: []string{
			"[n] bara api; api yang menyala-nyala",
			"[a] berpijar; bersinar terang seperti api",
		},
		Entries: []Entry{{
			Lemma: "pijar",
			Senses: []Sense{
				{
					Class:       "n",
					Description: "bara api; api yang menyala-nyala",
					Examples:    []string{"Pijar api unggun menerangi malam"},
					Synonyms:    []string{"bara", "api"},
					Antonyms:    []string{},
				},
				{
					Class:       "a",
					Description: "berpijar; bersinar terang seperti api",
					Examples:    []string{"Matanya pijar penuh semangat"},
					Synonyms:    []string{"bersinar", "berkilau"},
					Antonyms:    []string{"redup", "padam"},
				},
			},
		}},
	},
	"rumah": {
		Lemmas: []string{"rumah"},
		Definitions: []string{
			"[n] bangunan untuk tempat tinggal",
			"[n] bangunan pada umumnya (seperti toko, kantor, sekolah)",
		},
		Entries: []Entry{{
			Lemma: "rumah",
			Senses: []Sense{{
				Class:       "n",
				Description: "bangunan untuk tempat tinggal",
				Examples:    []string{"Rumah kami terletak di ujung jalan"},
				Synonyms:    []string{"hunian", "tempat tinggal"},
				Antonyms:    []string{},
			}},
		}},
	},
	"buku": {
		Lemmas: []string{"buku"},
		Definitions: []string{
			"[n] lembar kertas yang berjilid, berisi tulisan atau kosong",
		},
		Entries: []Entry{{
			Lemma: "buku",
			Senses: []Sense{{
				Class:       "n",
				Description: "lembar kertas yang berjilid, berisi tulisan atau kosong",
				Examples:    []string{"Buku ini sangat menarik untuk dibaca"},
				Synonyms:    []string{"kitab"},
				Antonyms:    []string{},
			}},
		}},
	},
}
