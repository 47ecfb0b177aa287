// Package main provides the entry point for the newslens CLI.
//
// newslens collects Korean news articles for a search keyword and ranks
// the keywords that recur across them.
//
// Usage:
//
//	newslens analyze <keyword>
//	newslens stopwords list
//	newslens history
//
// See --help for all available options.
package main

// main is the entry point for newslens.
func main() {
	Execute()
}
