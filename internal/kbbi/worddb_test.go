package kbbi

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func wordRecord(lemma, class string, subs ...string) string {
	doc := `{"data":{"entri":[{"nama":"` + lemma + `","makna":[{"kelas":[{"kode":"` + class + `"}],"submakna":[`
	for i, s := range subs {
		if i > 0 {
			doc += ","
		}
		doc += `"` + s + `"`
	}
	return doc + `]}]}]}}`
}

func writeWordShard(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write shard: %v", err)
	}
}

func TestLoadWordDBFirstShardWins(t *testing.T) {
	dir := t.TempDir()
	writeWordShard(t, dir, "kbbi_word_data_1.json",
		`{"Pijar": `+wordRecord("pijar", "n", "bara api")+`}`)
	writeWordShard(t, dir, "kbbi_word_data_2.json",
		`{"Pijar": `+wordRecord("pijar", "a", "versi kedua")+`,
		  "rumah": `+wordRecord("rumah", "n", "tempat tinggal")+`}`)

	db := LoadWordDB(filepath.Join(dir, "kbbi_word_data*.json"), zerolog.Nop())
	if db.Size() != 2 {
		t.Fatalf("Size = %d, want 2", db.Size())
	}

	rec, ok := db.Lookup("pijar")
	if !ok {
		t.Fatal("pijar record missing")
	}
	_, defs, _ := TransformRecord(rec)
	want := []string{"[n] bara api"}
	if !reflect.DeepEqual(defs, want) {
		t.Errorf("definitions = %v, want %v (first shard must win)", defs, want)
	}
}

func TestWordDBLookupByEmbeddedLemma(t *testing.T) {
	dir := t.TempDir()
	writeWordShard(t, dir, "kbbi_word_data_1.json",
		`{"rumah sakit": `+wordRecord("rumah", "n", "tempat tinggal")+`}`)

	db := LoadWordDB(filepath.Join(dir, "kbbi_word_data*.json"), zerolog.Nop())

	// Top-level key match.
	if _, ok := db.Lookup("rumah sakit"); !ok {
		t.Error("lookup by normalized top-level key failed")
	}
	// Embedded lemma match for a word with no top-level key of its own.
	if _, ok := db.Lookup("rumah"); !ok {
		t.Error("lookup by embedded lemma failed")
	}
	if _, ok := db.Lookup("sakit"); ok {
		t.Error("lookup of unknown word unexpectedly succeeded")
	}
}

func TestWordDBSuggestPrefixReturnsOriginalKeys(t *testing.T) {
	dir := t.TempDir()
	writeWordShard(t, dir, "kbbi_word_data_1.json",
		`{"Rumah": `+wordRecord("rumah", "n", "tempat tinggal")+`,
		  "Rusa": `+wordRecord("rusa", "n", "binatang")+`,
		  "Buku": `+wordRecord("buku", "n", "kitab")+`}`)

	db := LoadWordDB(filepath.Join(dir, "kbbi_word_data*.json"), zerolog.Nop())
	got := db.SuggestPrefix("ru", 10)
	want := []string{"Rumah", "Rusa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestPrefix = %v, want %v", got, want)
	}
}

func TestTransformRecordShapesPayload(t *testing.T) {
	rec := map[string]any{
		"data": map[string]any{
			"entri": []any{
				map[string]any{
					"nama": "pijar",
					"makna": []any{map[string]any{
						"kelas":    []any{map[string]any{"kode": "n"}},
						"submakna": []any{"bara api", "api yang menyala"},
						"contoh":   []any{"pijar api unggun"},
						"sinonim":  []any{"bara"},
						"antonim":  []any{},
					}},
				},
				map[string]any{
					"nama":  "pijar",
					"makna": []any{},
				},
			},
		},
	}

	lemmas, defs, entries := TransformRecord(rec)
	if !reflect.DeepEqual(lemmas, []string{"pijar"}) {
		t.Errorf("lemmas = %v, want [pijar] (deduplicated)", lemmas)
	}
	wantDefs := []string{"[n] bara api", "[n] api yang menyala"}
	if !reflect.DeepEqual(defs, wantDefs) {
		t.Errorf("definitions = %v, want %v", defs, wantDefs)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if len(entries[0].Senses) != 2 {
		t.Fatalf("senses = %d, want 2", len(entries[0].Senses))
	}
	s := entries[0].Senses[0]
	if s.Class != "n" || s.Description != "bara api" {
		t.Errorf("sense = %+v", s)
	}
	if !reflect.DeepEqual(s.Examples, []string{"pijar api unggun"}) {
		t.Errorf("examples = %v", s.Examples)
	}
	if len(entries[1].Senses) != 0 || entries[1].Senses == nil {
		t.Errorf("empty entry senses = %#v, want non-nil empty slice", entries[1].Senses)
	}
}

func TestLoadWordDBMissingShards(t *testing.T) {
	db := LoadWordDB(filepath.Join(t.TempDir(), "kbbi_word_data*.json"), zerolog.Nop())
	if db.Size() != 0 {
		t.Errorf("Size = %d, want 0", db.Size())
	}
	if _, ok := db.Lookup("pijar"); ok {
		t.Error("lookup on empty db unexpectedly succeeded")
	}
}
