package textkeys

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Words splits the text read from r into words. Segments are delimited by
// line-break opportunities; leading and trailing characters which are neither
// letters nor digits are removed from each segment, and segments left empty
// are dropped.
//
// If reading from r fails, Words returns the words found so far together with
// the read error.
func Words(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, ErrIllegalArguments
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	words := make([]string, 0, 64)
	for segmenter.Next() {
		if w := trimWord(string(segmenter.Bytes())); w != "" {
			words = append(words, w)
		}
	}
	if err := segmenter.Err(); err != nil && !errors.Is(err, io.EOF) {
		tracer().Errorf("textkeys: reading text failed after %d words: %v", len(words), err)
		return words, fmt.Errorf("textkeys: reading text: %w", err)
	}
	tracer().Debugf("textkeys: found %d words", len(words))
	return words, nil
}

func trimWord(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
