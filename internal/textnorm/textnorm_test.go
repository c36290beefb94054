// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ascii lower", "toy story", "toy story"},
		{"ascii upper", "TOY STORY", "toy story"},
		{"acute accent", "Café", "cafe"},
		{"decomposed input", "Cafe\u0301", "cafe"},
		{"spanish", "Pedro Almodóvar", "pedro almodovar"},
		{"tilde", "Año Nuevo", "ano nuevo"},
		{"umlaut", "Über", "uber"},
		{"dotted capital I", "İstanbul", "istanbul"},
		{"punctuation kept", "Se7en: Part II!", "se7en: part ii!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Café", "AMÉLIE", "İstanbul", "Crème Brûlée", "Ñandú", "東京物語", "ΣΊΣΥΦΟΣ"}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}
