package kbbi

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "PiJar", "pijar"},
		{"strip punctuation", "pi.jar!", "pijar"},
		{"underscore to space", "rumah_sakit", "rumah sakit"},
		{"collapse whitespace", "  rumah \t sakit  ", "rumah sakit"},
		{"mixed", "Ru.Mah__Sa,kit", "rumah sakit"},
		{"digits survive", "abad-21", "abad21"},
		{"empty", "", ""},
		{"punctuation only", "?!...", ""},
		{"whitespace only", " \t\n ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"PiJar", "rumah_sakit", "  a  b  ", "café", "ber-lari 2x"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
