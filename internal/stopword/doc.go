// Package stopword manages the persisted set of tokens excluded from
// keyword extraction.
//
// The set lives in a single JSON file: an array of strings, written sorted
// so that successive saves diff cleanly, UTF-8 without ASCII escaping so the
// words stay readable in the file.
//
// Load degrades gracefully: a missing or corrupt file yields an empty set,
// because a broken stopword file should never block an analysis run. Save
// failures are surfaced, because silently dropping a user's exclusions loses
// their intent.
//
// Saves are atomic (write to a temp file, then rename) so a crash can never
// leave a half-written file behind. Concurrent saves from independent
// processes still race with last-writer-wins semantics; the store assumes a
// single active writer.
package stopword
