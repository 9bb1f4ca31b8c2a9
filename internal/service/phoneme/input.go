package phoneme

// ConvertInput is a single word-to-phonemes request.
type ConvertInput struct {
	Word string
}
