package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/newslens/newslens/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.AnalysisResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeRanking(md, result)
	w.writeArticles(md, result)

	return len(md.String()), md.Build()
}

// writeHeader writes the run summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H1("News Keyword Analysis: " + result.Keyword)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Search Keyword", "`" + result.Keyword + "`"},
			{"Started At", result.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Articles Collected", strconv.Itoa(result.Collected)},
			{"Articles Requested", strconv.Itoa(result.Requested)},
			{"Articles Skipped", strconv.Itoa(result.Skipped)},
			{"Keywords Per Article", strconv.Itoa(result.TopN)},
		},
	})
	md.PlainText("")
}

// writeRanking writes the ranked keyword table.
func (w *MarkdownWriter) writeRanking(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Keyword Ranking")
	md.PlainText("")

	if len(result.Keywords) == 0 {
		md.PlainText("No keywords extracted.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(result.Keywords))
	for i, stat := range result.Keywords {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			stat.Token,
			strconv.Itoa(stat.ArticleCount),
			strconv.Itoa(stat.TotalFrequency),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Keyword", "Articles", "Mentions"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeArticles writes the collected article list as markdown links.
func (w *MarkdownWriter) writeArticles(md *markdown.Markdown, result *model.AnalysisResult) {
	if len(result.Articles) == 0 {
		return
	}

	md.H2("Collected Articles")
	md.PlainText("")

	items := make([]string, 0, len(result.Articles))
	for _, ref := range result.Articles {
		item := "[" + ref.Title + "](" + ref.Link + ")"
		if !ref.PublishedAt.IsZero() {
			item += " (" + ref.PublishedAt.Format("2006-01-02") + ")"
		}
		items = append(items, item)
	}
	md.BulletList(items...)
	md.PlainText("")
}
