package lexicon

import "testing"

func TestToIPA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phonemes string
		want     string
	}{
		{"cat", "K AE T", "/kæt/"},
		{"stress stripped", "HH AW1 S", "/haʊs/"},
		{"tomato", "T AH0 M EY1 T OW2", "/tʌmeɪtoʊ/"},
		{"lowercase symbols", "k ae t", "/kæt/"},
		{"unknown symbols dropped", "K SIL AE T", "/kæt/"},
		{"extra spaces", "  K  AE T ", "/kæt/"},
		{"empty", "", "//"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToIPA(tt.phonemes); got != tt.want {
				t.Errorf("ToIPA(%q) = %q, want %q", tt.phonemes, got, tt.want)
			}
		})
	}
}

func TestStripStress(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"AE0": "AE",
		"AE1": "AE",
		"AE2": "AE",
		"AE":  "AE",
		"":    "",
		"AE3": "AE3",
	}
	for in, want := range tests {
		if got := stripStress(in); got != want {
			t.Errorf("stripStress(%q) = %q, want %q", in, got, want)
		}
	}
}
