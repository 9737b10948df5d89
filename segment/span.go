package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind distinguishes words from the whitespace between them.
type Kind int

const (
	// KindWord is a maximal run of non-whitespace characters.
	KindWord Kind = iota

	// KindGap is a maximal run of whitespace characters.
	KindGap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindGap:
		return "gap"
	default:
		return "unknown"
	}
}

// Whitespace classes match unicode.IsSpace. RE2's \s alone omits \v,
// U+0085 and the Unicode separators.
var (
	gapMatcher  = regexp.MustCompile(`[\t\n\v\f\r\x{85}\p{Z}]+`)
	wordMatcher = regexp.MustCompile(`[^\t\n\v\f\r\x{85}\p{Z}]+`)
)

// Span is a half-open byte range [Start, End) into the trimmed source text.
// Length is the rune count of the range.
type Span struct {
	Kind   Kind
	Start  int
	End    int
	Length int
}

// Text returns the slice of src covered by the span.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

func newSpan(kind Kind, src string, loc []int) Span {
	return Span{
		Kind:   kind,
		Start:  loc[0],
		End:    loc[1],
		Length: utf8.RuneCountInString(src[loc[0]:loc[1]]),
	}
}

// Trimmed returns text with leading and trailing whitespace removed.
// Offsets reported by Spans refer to this string.
func Trimmed(text string) string {
	return strings.TrimSpace(text)
}

// Spans returns the words and gaps of the trimmed text, interleaved in
// source order. The first span is always a word.
func Spans(text string) []Span {
	src := Trimmed(text)
	words, gaps := scan(src)

	spans := make([]Span, 0, len(words)+len(gaps))
	for i, w := range words {
		spans = append(spans, w)
		if i < len(gaps) {
			spans = append(spans, gaps[i])
		}
	}
	return spans
}

// scan finds the words and gaps of an already trimmed src.
func scan(src string) (words, gaps []Span) {
	for _, loc := range gapMatcher.FindAllStringIndex(src, -1) {
		gaps = append(gaps, newSpan(KindGap, src, loc))
	}
	for _, loc := range wordMatcher.FindAllStringIndex(src, -1) {
		words = append(words, newSpan(KindWord, src, loc))
	}
	return words, gaps
}
