package textclean

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// tagPattern matches markup tags. The search API only ever emits simple
// highlight tags (<b>, </b>) in titles, but article snippets occasionally
// carry other inline markup, so we strip any tag-shaped run.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// entityReplacer decodes the fixed entity set the search API uses.
// We deliberately do not pull in a full HTML entity table; these five are
// the only entities the API documents for result titles.
var entityReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// StripTags removes markup tags and decodes the fixed entity set.
// Tags are removed before entities are decoded so that a decoded "<" can
// never be mistaken for the start of a tag.
func StripTags(s string) string {
	return entityReplacer.Replace(tagPattern.ReplaceAllString(s, ""))
}

// Clean reduces article body text to whitespace-separated word runs ready
// for tokenization. It applies NFC normalization, then drops digits, Latin
// letters, and non-word runes, and finally collapses whitespace runs to
// single spaces.
//
// Design decision: Latin letters are removed on purpose. The tokenizer
// models are trained on Korean corpora and product names, bylines, and
// embedded URLs written in Latin script only add noise to the keyword table.
func Clean(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))

	space := true // collapse leading whitespace too
	for _, r := range s {
		if keepRune(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// keepRune reports whether a rune survives cleaning: letters outside the
// ASCII Latin range, plus underscore. Digits, ASCII letters, punctuation,
// and symbols all become separators.
func keepRune(r rune) bool {
	if r == '_' {
		return true
	}
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return false
	}
	if unicode.IsDigit(r) {
		return false
	}
	return unicode.IsLetter(r)
}
