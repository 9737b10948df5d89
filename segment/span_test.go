package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "word", KindWord.String())
	assert.Equal(t, "gap", KindGap.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "empty",
			input: "",
			want:  []Span{},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			want:  []Span{},
		},
		{
			name:  "single word",
			input: "abc",
			want:  []Span{{Kind: KindWord, Start: 0, End: 3, Length: 3}},
		},
		{
			name:  "offsets refer to trimmed text",
			input: "  hello  world ",
			want: []Span{
				{Kind: KindWord, Start: 0, End: 5, Length: 5},
				{Kind: KindGap, Start: 5, End: 7, Length: 2},
				{Kind: KindWord, Start: 7, End: 12, Length: 5},
			},
		},
		{
			name:  "multibyte lengths are rune counts",
			input: "héllo wörld",
			want: []Span{
				{Kind: KindWord, Start: 0, End: 6, Length: 5},
				{Kind: KindGap, Start: 6, End: 7, Length: 1},
				{Kind: KindWord, Start: 7, End: 13, Length: 5},
			},
		},
		{
			name:  "unicode separators form one gap",
			input: "a\u00a0 \u3000b",
			want: []Span{
				{Kind: KindWord, Start: 0, End: 1, Length: 1},
				{Kind: KindGap, Start: 1, End: 7, Length: 3},
				{Kind: KindWord, Start: 7, End: 8, Length: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spans(tt.input)
			assert.Equal(t, tt.want, got)

			src := Trimmed(tt.input)
			for i, span := range got {
				assert.Equal(t, span.Length, len([]rune(span.Text(src))))
				if i > 0 {
					assert.LessOrEqual(t, got[i-1].End, span.Start, "spans overlap")
					assert.NotEqual(t, got[i-1].Kind, span.Kind, "kinds must alternate")
				}
			}
		})
	}
}

func TestScan_CountsAfterTrim(t *testing.T) {
	words, gaps := scan(Trimmed("  one two   three \n"))

	require.Len(t, words, 3)
	require.Len(t, gaps, 2)
	assert.Equal(t, "three", words[2].Text("one two   three"))
	assert.Equal(t, 3, gaps[1].Length)
}

func TestPack_PadsFinalGap(t *testing.T) {
	src := "ab cd"
	words, gaps := scan(src)
	require.Len(t, gaps, len(words)-1)

	groups, err := New(10).pack(src, words, gaps)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	// word, gap, word, padded gap
	assert.Len(t, groups[0].spans, 4)
	assert.Equal(t, []string{"ab cd"}, materialize(src, groups))
}

func TestPack_GroupLengthsWithinLimit(t *testing.T) {
	src := "one two three four five six seven"
	words, gaps := scan(src)

	groups, err := New(9).pack(src, words, gaps)
	require.NoError(t, err)

	for _, g := range groups {
		assert.LessOrEqual(t, g.length, 9)
		require.NotEmpty(t, g.spans)
		assert.Equal(t, KindWord, g.spans[0].Kind)
	}
}

func TestSplitRunes(t *testing.T) {
	assert.Equal(t, []string{}, splitRunes("", 4))
	assert.Equal(t, []string{"abcd", "ef"}, splitRunes("abcdef", 4))
	assert.Equal(t, []string{"ñá", "ü"}, splitRunes("ñáü", 2))
	assert.Equal(t, []string{"abc"}, splitRunes("abc", 1<<30))
}
