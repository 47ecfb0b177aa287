package tokenizer

// Tokenizer splits cleaned text into an ordered sequence of tokens.
//
// Implementations must be safe for concurrent use: the pipeline shares one
// tokenizer across all extraction workers.
type Tokenizer interface {
	// Tokenize returns the tokens of text in their order of appearance.
	// An empty or all-separator input yields an empty slice.
	Tokenize(text string) []string
}
