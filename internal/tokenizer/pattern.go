package tokenizer

import "strings"

// PatternTokenizer is the fallback used when no trained model is available.
// It treats every whitespace-separated chunk as one token, which matches the
// shape Clean-ed text already has. Quality is worse than a trained model
// (particles stay attached), but it keeps analysis working.
type PatternTokenizer struct{}

// NewPatternTokenizer creates the fallback tokenizer.
func NewPatternTokenizer() *PatternTokenizer {
	return &PatternTokenizer{}
}

// Tokenize splits text on whitespace. The input must already be cleaned:
// on raw text the tokens keep punctuation, markup, and digits attached.
func (t *PatternTokenizer) Tokenize(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
