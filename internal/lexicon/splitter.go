package lexicon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// LineSplitter turns one dictionary line into a raw word and its phoneme string.
// Implementations return ErrSkipLine for lines without an entry and
// ErrMalformedLine when no separator can be found.
type LineSplitter interface {
	Split(line string) (word, phonemes string, err error)
}

// Format names accepted by SplitterByName.
const (
	FormatSphinx = "sphinx"
	FormatCMU    = "cmu"
)

// SplitterByName returns the splitter registered under name.
func SplitterByName(name string) (LineSplitter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatSphinx, "":
		return SphinxSplitter{}, nil
	case FormatCMU:
		return CMUSplitter{}, nil
	default:
		return nil, fmt.Errorf("unknown dictionary format %q", name)
	}
}

// sphinxSep matches the quote-space-quote token and the tab used by the
// cmudict_SPHINX_40 distribution.
var sphinxSep = regexp.MustCompile(`" "|\t`)

// SphinxSplitter parses the Sphinx dictionary layout: WORD<sep>PH1 PH2 ...,
// where <sep> is a tab or the literal `" "`. Every separator occurrence splits
// the line; fields after the first are rejoined with single spaces.
type SphinxSplitter struct{}

// Split implements LineSplitter.
func (SphinxSplitter) Split(line string) (string, string, error) {
	fields := sphinxSep.Split(line, -1)
	if len(fields) < 2 || fields[0] == "" {
		return "", "", ErrMalformedLine
	}
	return fields[0], strings.Join(fields[1:], " "), nil
}

// CMUSplitter parses the classic CMU Pronouncing Dictionary layout:
// WORD  PH1 PH2 ... with two spaces after the word and ";;;" comments.
// Alternate pronunciations written as WORD(2), WORD(3) are folded into WORD,
// so their order in the file becomes their variant order.
type CMUSplitter struct{}

// Split implements LineSplitter.
func (CMUSplitter) Split(line string) (string, string, error) {
	if strings.HasPrefix(line, ";;;") {
		return "", "", ErrSkipLine
	}

	parts := strings.SplitN(line, "  ", 2)
	if len(parts) != 2 {
		return "", "", ErrMalformedLine
	}

	word := stripVariantMarker(strings.TrimSpace(parts[0]))
	phonemes := strings.Fields(parts[1])
	if word == "" || len(phonemes) == 0 {
		return "", "", ErrMalformedLine
	}

	return word, strings.Join(phonemes, " "), nil
}

// stripVariantMarker turns "HOUSE(2)" into "HOUSE". Tokens whose parentheses
// do not hold a number are returned unchanged.
func stripVariantMarker(raw string) string {
	idx := strings.IndexByte(raw, '(')
	if idx <= 0 || !strings.HasSuffix(raw, ")") {
		return raw
	}
	if _, err := strconv.Atoi(raw[idx+1 : len(raw)-1]); err != nil {
		return raw
	}
	return raw[:idx]
}
