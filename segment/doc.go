// Package segment splits text into length-bounded chunks, breaking on
// whitespace.
//
// The typical use is posting a long body of text as a thread of short
// messages: every chunk fits the limit, words are never cut, and the
// whitespace that falls on a break is dropped.
//
// # Basic Usage
//
//	chunks, err := segment.Split(text, 280)
//	if err != nil {
//	    // errors.Is(err, segment.ErrLimitTooSmall): some word is longer than 280
//	}
//
// Or configure a reusable segmenter:
//
//	s := segment.New(140).WithLogger(logger)
//	chunks, err := s.Split(text)
//
// # Rules
//
// Leading and trailing whitespace of the input is ignored. Words are packed
// greedily: a word joins the current chunk if the chunk stays within the
// limit, and the whitespace after it is kept only if the chunk stays below
// the limit. Chunks never end in whitespace.
//
// Text with no whitespace at all has no valid break, so it is cut every
// limit characters instead. Otherwise a word longer than the limit is an
// error wrapping ErrLimitTooSmall; no partial result is returned.
//
// # Configuration
//
// Config carries the limit and can be loaded from YAML, TOML or JSON files
// with LoadConfig, or from the TWEETSPLIT_MAX_LENGTH environment variable:
//
//	cfg, err := segment.LoadConfig("tweetsplit.yaml")
//	s, err := segment.FromConfig(cfg)
//
// # UTF-8 Support
//
// Lengths count runes, not bytes, and whitespace follows unicode.IsSpace.
package segment
