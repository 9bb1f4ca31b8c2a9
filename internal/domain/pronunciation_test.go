package domain

import "testing"

func TestLookupResult_Message(t *testing.T) {
	t.Parallel()

	if got := (LookupResult{Phonemes: "K AE T", Found: true}).Message(); got != MessageFound {
		t.Errorf("found message = %q, want %q", got, MessageFound)
	}
	if got := (LookupResult{Phonemes: "xyzzy"}).Message(); got != MessageUnknown {
		t.Errorf("unknown message = %q, want %q", got, MessageUnknown)
	}
}
