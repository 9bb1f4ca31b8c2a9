package lexicon

import (
	"errors"
	"testing"
)

func TestSphinxSplitter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		line         string
		wantWord     string
		wantPhonemes string
		wantErr      error
	}{
		{"tab", "CAT\tK AE T", "CAT", "K AE T", nil},
		{"quote space quote", `CAT" "K AE T`, "CAT", "K AE T", nil},
		{"variant marker kept", "A(2)\tEY", "A(2)", "EY", nil},
		{"plain spaces are not a separator", "CAT K AE T", "", "", ErrMalformedLine},
		{"lone quote is not a separator", `CAT"K AE T`, "", "", ErrMalformedLine},
		{"no word", "\tK AE T", "", "", ErrMalformedLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			word, phonemes, err := SphinxSplitter{}.Split(tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if word != tt.wantWord || phonemes != tt.wantPhonemes {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
					tt.line, word, phonemes, tt.wantWord, tt.wantPhonemes)
			}
		})
	}
}

func TestCMUSplitter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		line         string
		wantWord     string
		wantPhonemes string
		wantErr      error
	}{
		{"simple", "HOUSE  HH AW1 S", "HOUSE", "HH AW1 S", nil},
		{"variant folded", "HOUSE(2)  HH AW1 Z", "HOUSE", "HH AW1 Z", nil},
		{"non numeric parens kept", "(PAREN  P ER0 EH1 N", "(PAREN", "P ER0 EH1 N", nil},
		{"extra spaces collapsed", "CAT  K   AE1  T", "CAT", "K AE1 T", nil},
		{"comment", ";;; comment", "", "", ErrSkipLine},
		{"single space", "HOUSE HH AW1 S", "", "", ErrMalformedLine},
		{"no phonemes", "HOUSE  ", "", "", ErrMalformedLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			word, phonemes, err := CMUSplitter{}.Split(tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if word != tt.wantWord || phonemes != tt.wantPhonemes {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
					tt.line, word, phonemes, tt.wantWord, tt.wantPhonemes)
			}
		})
	}
}

func TestSplitterByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    LineSplitter
		wantErr bool
	}{
		{"sphinx", SphinxSplitter{}, false},
		{"SPHINX", SphinxSplitter{}, false},
		{"", SphinxSplitter{}, false},
		{"cmu", CMUSplitter{}, false},
		{"arpabet", nil, true},
	}
	for _, tt := range tests {
		got, err := SplitterByName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("SplitterByName(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("SplitterByName(%q) = %T, want %T", tt.name, got, tt.want)
		}
	}
}

func TestStripVariantMarker(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HOUSE(2)":  "HOUSE",
		"HOUSE(10)": "HOUSE",
		"HOUSE":     "HOUSE",
		"HOUSE(":    "HOUSE(",
		"HOUSE(X)":  "HOUSE(X)",
		"(2)":       "(2)",
	}
	for in, want := range tests {
		if got := stripVariantMarker(in); got != want {
			t.Errorf("stripVariantMarker(%q) = %q, want %q", in, got, want)
		}
	}
}
