package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/newslens/newslens/internal/model"
)

// SimpleWriter outputs human-readable text results.
// This format is designed for terminal display with a ranked keyword table
// and clear section formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// limit caps the number of ranked keywords shown. Zero means all.
	limit int

	// showArticles includes the collected article list in the output.
	showArticles bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithLimit caps the number of ranked keywords shown.
func WithLimit(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.limit = n
	}
}

// WithArticleList includes the collected article titles and links.
func WithArticleList(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showArticles = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in human-readable format.
func (w *SimpleWriter) Write(result *model.AnalysisResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeRanking(&sb, result)
	if w.showArticles {
		w.writeArticles(&sb, result)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the run summary section.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                  NEWS KEYWORD ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Search Keyword: %s\n", result.Keyword))
	sb.WriteString(fmt.Sprintf("Started At:     %s\n", result.StartedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Articles:       %d collected / %d requested\n", result.Collected, result.Requested))
	if result.Skipped > 0 {
		sb.WriteString(fmt.Sprintf("Skipped:        %d (fetch/parse failures)\n", result.Skipped))
	}
	sb.WriteString(fmt.Sprintf("Contributing:   %d\n", result.Contributed()))
	sb.WriteString("\n")
}

// writeRanking writes the ranked keyword table.
func (w *SimpleWriter) writeRanking(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("KEYWORD RANKING\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	keywords := result.Keywords
	if w.limit > 0 && len(keywords) > w.limit {
		keywords = keywords[:w.limit]
	}

	if len(keywords) == 0 {
		sb.WriteString("  No keywords extracted\n\n")
		return
	}

	sb.WriteString(fmt.Sprintf("  %-4s %-20s %10s %10s\n", "Rank", "Keyword", "Articles", "Mentions"))
	for i, stat := range keywords {
		sb.WriteString(fmt.Sprintf("  %-4d %s %10d %10d\n",
			i+1, padToken(stat.Token, 20), stat.ArticleCount, stat.TotalFrequency))
	}
	sb.WriteString("\n")
}

// writeArticles writes the collected article list.
func (w *SimpleWriter) writeArticles(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("COLLECTED ARTICLES\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	for _, ref := range result.Articles {
		date := ""
		if !ref.PublishedAt.IsZero() {
			date = ref.PublishedAt.Format("2006-01-02")
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s\n      %s\n", date, ref.Title, ref.Link))
	}
	sb.WriteString("\n")
}

// padToken right-pads a token to width display columns. Rune count is a
// rough stand-in for display width; good enough for terminal tables.
func padToken(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
