package tokenizer

import "strings"

// LTokenizer splits each whitespace-separated chunk at the boundary between
// its L part (the content word) and R part (particles and endings), keeping
// only the L part. The boundary is chosen by maximizing the trained score
// over all prefixes of the chunk.
//
// This mirrors how agglutinative news text is tokenized: the topical word
// sits at the front of a chunk and the grammatical tail carries no keyword
// signal.
type LTokenizer struct {
	// scores maps a word to its trained score. Words absent from the map
	// score zero.
	scores map[string]float64

	// maxWordLen bounds the prefix search. Derived from the longest scored
	// word so lookup cost stays proportional to the model, not the chunk.
	maxWordLen int
}

// NewLTokenizer creates an LTokenizer over a prepared score table.
// Most callers should use LoadModel instead; this constructor exists for
// tests and for embedding precomputed tables.
func NewLTokenizer(scores map[string]float64) *LTokenizer {
	maxLen := 0
	for word := range scores {
		if n := len([]rune(word)); n > maxLen {
			maxLen = n
		}
	}

	return &LTokenizer{
		scores:     scores,
		maxWordLen: maxLen,
	}
}

// WordCount returns the number of scored words in the model.
func (t *LTokenizer) WordCount() int {
	return len(t.scores)
}

// Tokenize splits text on whitespace and reduces each chunk to its best
// scoring prefix. Chunks with no scoring prefix pass through whole, so text
// outside the trained vocabulary still yields tokens.
func (t *LTokenizer) Tokenize(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(fields))
	for _, chunk := range fields {
		tokens = append(tokens, t.splitL(chunk))
	}
	return tokens
}

// splitL returns the highest-scoring prefix of chunk, or the whole chunk
// when nothing in the model matches. Longer prefixes win score ties so that
// compound words are not cut short by their own head word.
func (t *LTokenizer) splitL(chunk string) string {
	runes := []rune(chunk)
	if len(runes) < 2 {
		return chunk
	}

	limit := len(runes)
	if t.maxWordLen > 0 && t.maxWordLen < limit {
		limit = t.maxWordLen
	}

	best := chunk
	bestScore := 0.0
	found := false

	for end := 1; end <= limit; end++ {
		prefix := string(runes[:end])
		score, ok := t.scores[prefix]
		if !ok {
			continue
		}
		if !found || score >= bestScore {
			best = prefix
			bestScore = score
			found = true
		}
	}

	return best
}
