// Package tweetsplit splits long text into a thread of length-bounded chunks.
//
// The work lives in subpackages:
//
//   - segment: whitespace-aware chunking, limit errors, and configuration
//
// # Quick Start
//
//	import "github.com/randalmurphal/tweetsplit/segment"
//	chunks, err := segment.Split(text, 280)
//
// Load the limit from a config file or the environment:
//
//	cfg, err := segment.LoadConfig("tweetsplit.toml")
//	s, err := segment.FromConfig(cfg)
//	chunks, err := s.Split(text)
//
// # Design Philosophy
//
//   - Deterministic: the same text and limit always produce the same chunks
//   - Words are never cut unless the text has no whitespace at all
//   - Limits that cannot be honored are errors, never oversized chunks
package tweetsplit
