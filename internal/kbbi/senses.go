package kbbi

import "strings"

// Tolerant field extraction shared by the offline index, the word-database
// transform, and the remote-result reshaping. Corpus records use the KBBI
// dump vocabulary: nama/lema/kata (headword), makna (senses), kelas (class
// list), submakna/arti/definisi (sub-meanings), contoh/sinonim/antonim.

// lemmaStrategies is the ordered list of extraction strategies used to
// resolve a display lemma from a raw entry; the first non-empty result wins.
var lemmaStrategies = []func(map[string]any) string{
	func(e map[string]any) string { return trimmedString(e["nama"]) },
	func(e map[string]any) string { return trimmedString(e["lema"]) },
	func(e map[string]any) string { return trimmedString(e["kata"]) },
	func(e map[string]any) string {
		// Some dumps nest the headword inside a "nama" object.
		obj, ok := e["nama"].(map[string]any)
		if !ok {
			return ""
		}
		for _, k := range []string{"text", "value", "nama"} {
			if s := trimmedString(obj[k]); s != "" {
				return s
			}
		}
		return ""
	},
}

// entryLemma resolves the display lemma of a raw entry, or "" when none of
// the strategies yields a non-empty string.
func entryLemma(e map[string]any) string {
	for _, strat := range lemmaStrategies {
		if s := strat(e); s != "" {
			return s
		}
	}
	return ""
}

func trimmedString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// classLabel extracts the first class code from a sense's "kelas" field,
// preferring the short code over the descriptive name. The field may be a
// list of objects, a list of strings, or a bare string.
func classLabel(m map[string]any) string {
	switch k := m["kelas"].(type) {
	case []any:
		if len(k) == 0 {
			return ""
		}
		switch k0 := k[0].(type) {
		case map[string]any:
			if s := trimmedString(k0["kode"]); s != "" {
				return s
			}
			return trimmedString(k0["nama"])
		case string:
			return strings.TrimSpace(k0)
		}
	case string:
		return strings.TrimSpace(k)
	}
	return ""
}

// subMeanings returns the sub-meaning strings of a sense. The field name
// varies across dumps (submakna, arti, definisi) and the value may be a
// list or a single string.
func subMeanings(m map[string]any) []string {
	var raw any
	for _, k := range []string{"submakna", "arti", "definisi"} {
		if v, ok := m[k]; ok && v != nil {
			raw = v
			break
		}
	}
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s := trimmedString(it); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return nil
}

// stringItems returns the string elements of a list-valued field,
// defensively skipping anything non-string and deduplicating while
// preserving order.
func stringItems(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, it := range list {
		s, ok := it.(string)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// formatDefinition renders a flat definition string, bracketing the class
// label when present: "[n] bangunan untuk tempat tinggal".
func formatDefinition(class, description string) string {
	if class == "" {
		return description
	}
	return "[" + class + "] " + description
}

// entrySenses flattens a raw entry's "makna" list into Senses, one per
// sub-meaning, carrying examples/synonyms/antonyms along.
func entrySenses(e map[string]any) []Sense {
	list, ok := e["makna"].([]any)
	if !ok {
		return nil
	}
	var out []Sense
	for _, it := range list {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		class := classLabel(m)
		examples := stringItems(m["contoh"])
		synonyms := stringItems(m["sinonim"])
		antonyms := stringItems(m["antonim"])
		for _, sub := range subMeanings(m) {
			out = append(out, Sense{
				Class:       class,
				Description: sub,
				Examples:    examples,
				Synonyms:    synonyms,
				Antonyms:    antonyms,
			})
		}
	}
	return out
}

// appendUnique appends items from src to dst, skipping duplicates and
// stopping once dst reaches limit. It returns the extended slice.
func appendUnique(dst, src []string, limit int) []string {
	for _, s := range src {
		if len(dst) >= limit {
			break
		}
		dup := false
		for _, have := range dst {
			if have == s {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, s)
		}
	}
	return dst
}
