// Package cli implements the phonemes command-line tool: one-shot
// conversion of words to phoneme strings against a local dictionary file.
package cli
