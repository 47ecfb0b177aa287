// Package tokenizer provides pluggable tokenization for cleaned article text.
//
// The extraction core depends only on the Tokenizer interface and never on a
// concrete implementation. Two implementations ship with newslens:
//
//   - LTokenizer: consumes a word-score model produced by an offline training
//     step (out of scope here) and splits each whitespace-separated chunk at
//     the highest-scoring prefix. Score variants select how the trained
//     cohesion and branching-entropy statistics combine.
//   - PatternTokenizer: a word-run fallback used when no trained model is
//     available, so analysis degrades gracefully instead of failing.
//
// Design decision: The model file is JSON rather than an opaque serialized
// object so that models trained elsewhere can be inspected and trimmed with
// standard tools before being shipped to analysts.
package tokenizer
