package segment

import "log/slog"

// DefaultMaxLength is the default maximum chunk length, in characters.
const DefaultMaxLength = 280

// Segmenter splits text into chunks no longer than a maximum length.
// A Segmenter holds no per-call state and is safe for concurrent use.
type Segmenter struct {
	maxLength int
	logger    *slog.Logger
}

// New creates a segmenter with the given maximum chunk length.
// The length is validated on each Split call.
func New(maxLength int) *Segmenter {
	return &Segmenter{
		maxLength: maxLength,
		logger:    slog.Default(),
	}
}

// NewDefault creates a segmenter using DefaultMaxLength.
func NewDefault() *Segmenter {
	return New(DefaultMaxLength)
}

// FromConfig creates a segmenter from a validated config.
func FromConfig(cfg Config) (*Segmenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.MaxLength), nil
}

// WithLogger sets the logger used for debug output.
func (s *Segmenter) WithLogger(logger *slog.Logger) *Segmenter {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// MaxLength returns the segmenter's maximum chunk length.
func (s *Segmenter) MaxLength() int {
	return s.maxLength
}

// Split divides text into chunks of at most MaxLength characters.
//
// Leading and trailing whitespace is ignored. Chunks break on whitespace,
// and whitespace falling on a break is dropped. Text without any whitespace
// is cut every MaxLength characters instead. Returns an error wrapping
// ErrLimitTooSmall when a single word is longer than MaxLength, and no
// chunks at all in that case.
func (s *Segmenter) Split(text string) ([]string, error) {
	if s.maxLength < 1 {
		s.logger.Debug("rejected segment limit", slog.Int("limit", s.maxLength))
		return nil, &LimitError{Limit: s.maxLength, Err: ErrInvalidLimit}
	}

	src := Trimmed(text)
	words, gaps := scan(src)

	if len(gaps) == 0 {
		if src != "" {
			s.logger.Debug("no whitespace in text, splitting by character count",
				slog.Int("limit", s.maxLength),
				slog.Int("bytes", len(src)))
		}
		return splitRunes(src, s.maxLength), nil
	}

	groups, err := s.pack(src, words, gaps)
	if err != nil {
		return nil, err
	}
	return materialize(src, groups), nil
}
