package segment

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// group is the run of spans that becomes one chunk.
type group struct {
	spans  []Span
	length int
}

func (g *group) add(s Span) {
	g.spans = append(g.spans, s)
	g.length += s.Length
}

// pack greedily assigns each word and its following gap to groups.
// A word is kept while the group stays within the limit; a gap only while
// the group stays strictly below it, so a gap never survives at a break.
// Returns a LimitError when a word alone exceeds the limit.
func (s *Segmenter) pack(src string, words, gaps []Span) ([]group, error) {
	limit := s.maxLength

	// Trimming removes the trailing gap, leaving the last word unpaired.
	// Its stand-in gap lands after the last word and is trimmed away.
	for len(gaps) < len(words) {
		gaps = append(gaps, gaps[len(gaps)-1])
	}

	var (
		groups []group
		cur    group
		full   bool
	)
	for i, word := range words {
		if word.Length > limit {
			s.logger.Debug("word longer than segment limit",
				slog.Int("limit", limit),
				slog.Int("word_length", word.Length),
				slog.Int("offset", word.Start))
			return nil, &LimitError{
				Limit:      limit,
				Word:       word.Text(src),
				WordLength: word.Length,
				Offset:     word.Start,
				Err:        ErrLimitTooSmall,
			}
		}

		if full || cur.length+word.Length > limit {
			groups = append(groups, cur)
			cur = group{}
		}
		cur.add(word)

		// A dropped gap ends the group; otherwise the next word would be
		// glued to this one.
		gap := gaps[i]
		full = cur.length+gap.Length >= limit
		if !full {
			cur.add(gap)
		}
	}

	return append(groups, cur), nil
}

// materialize joins each group's source ranges into an owned string
// without trailing whitespace.
func materialize(src string, groups []group) []string {
	chunks := make([]string, 0, len(groups))

	var sb strings.Builder
	for _, g := range groups {
		sb.Reset()
		for _, span := range g.spans {
			sb.WriteString(span.Text(src))
		}
		chunks = append(chunks, strings.TrimRightFunc(sb.String(), unicode.IsSpace))
	}

	return chunks
}

// splitRunes cuts src into consecutive pieces of limit runes, the last
// possibly shorter. Used when src has no whitespace to break on.
func splitRunes(src string, limit int) []string {
	chunks := make([]string, 0, utf8.RuneCountInString(src)/limit+1)

	for len(src) > 0 {
		end := 0
		for n := 0; n < limit && end < len(src); n++ {
			_, size := utf8.DecodeRuneInString(src[end:])
			end += size
		}
		chunks = append(chunks, strings.Clone(src[:end]))
		src = src[end:]
	}

	return chunks
}
