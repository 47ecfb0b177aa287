// Package textclean normalizes raw article markup into plain searchable text.
//
// Two layers of cleaning are provided:
//   - StripTags: removes markup tags and decodes the small fixed entity set
//     the search API emits in result titles
//   - Clean: reduces article body text to whitespace-separated word runs
//     suitable for tokenization
//
// All functions are pure; they never fail and have no side effects.
package textclean
