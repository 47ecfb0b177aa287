package stopword

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Set is a set of excluded tokens. The zero value is not usable; construct
// sets with NewSet or Store.Load.
type Set map[string]struct{}

// NewSet builds a Set from the given words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Add returns the union of s and words. The receiver is not modified;
// adding an already-present word is a no-op.
func (s Set) Add(words ...string) Set {
	out := make(Set, len(s)+len(words))
	for w := range s {
		out[w] = struct{}{}
	}
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

// Remove returns s minus words. The receiver is not modified; removing an
// absent word is a no-op.
func (s Set) Remove(words ...string) Set {
	out := make(Set, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	for _, w := range words {
		delete(out, w)
	}
	return out
}

// Sorted returns the words of the set in lexical order.
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Store persists a stopword Set to a single JSON file.
type Store struct {
	// path is the location of the stopword file.
	path string
}

// NewStore creates a Store backed by the file at path.
// The file does not need to exist yet; the first Save creates it along with
// any missing parent directories.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the stopword file.
func (st *Store) Path() string {
	return st.path
}

// Load reads the persisted set.
//
// A missing file or unparseable content yields an empty set and no error.
// This is deliberate: corrupt stopword state degrades the analysis slightly
// (more noise in the table) but must never abort it.
func (st *Store) Load() Set {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return NewSet()
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return NewSet()
	}

	return NewSet(words...)
}

// Save serializes the full set, replacing any prior content. The storage
// layer is not additive: callers wanting to extend the persisted set must
// Load, Add, then Save.
//
// The write is atomic: content goes to a temp file in the same directory
// which is then renamed over the target, so readers never observe a partial
// file even if the process dies mid-write.
func (st *Store) Save(s Set) error {
	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create stopword directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // keep non-Latin words readable in the file
	if err := enc.Encode(s.Sorted()); err != nil {
		return fmt.Errorf("failed to encode stopwords: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".stopwords-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp stopword file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write stopwords: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp stopword file: %w", err)
	}

	if err := os.Rename(tmpName, st.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace stopword file: %w", err)
	}

	return nil
}
