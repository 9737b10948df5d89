package segment

// Split divides text into chunks of at most maxLength characters.
// It is shorthand for New(maxLength).Split(text).
func Split(text string, maxLength int) ([]string, error) {
	return New(maxLength).Split(text)
}

// MustSplit is like Split but panics on error.
// Intended for constant inputs known to fit the limit.
func MustSplit(text string, maxLength int) []string {
	chunks, err := Split(text, maxLength)
	if err != nil {
		panic(err)
	}
	return chunks
}
