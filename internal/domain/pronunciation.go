package domain

// Invocation messages returned alongside the phoneme string.
const (
	MessageFound   = "data processed"
	MessageUnknown = "unknown word"
)

// LookupResult is the outcome of resolving a single word.
// Phonemes holds the canonical variant when Found is true and the caller's
// original input otherwise.
type LookupResult struct {
	Phonemes string
	Found    bool
}

// Message returns the invocation message that corresponds to the result.
func (r LookupResult) Message() string {
	if r.Found {
		return MessageFound
	}
	return MessageUnknown
}

// PronunciationVariant is one phoneme sequence for a word, in dictionary order.
type PronunciationVariant struct {
	Index    int    // 0 for the canonical pronunciation
	Phonemes string // space-separated phoneme symbols, e.g. "K AE T"
	IPA      string // e.g. "/kæt/"
}
