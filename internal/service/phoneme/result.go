package phoneme

import "github.com/heartmarshall/phoneme-service/internal/domain"

// ConvertResult is the outcome of Convert.
type ConvertResult struct {
	Phonemes string
	Message  string
	Found    bool
}

// PronunciationsResult lists every variant of one word.
type PronunciationsResult struct {
	Word     string
	Variants []domain.PronunciationVariant
}
