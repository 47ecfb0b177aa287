package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/newslens/newslens/internal/model"
)

// utf8BOM is prepended to CSV output so spreadsheet applications detect
// UTF-8 and render Korean tokens correctly.
const utf8BOM = "\ufeff"

// CSVWriter exports the ranked keyword table as CSV.
// This format is designed for spreadsheet import and offline analysis.
type CSVWriter struct {
	baseWriter

	// bom controls whether a UTF-8 byte order mark is written first.
	bom bool
}

// CSVWriterOption configures a CSVWriter.
type CSVWriterOption func(*CSVWriter)

// WithoutBOM disables the UTF-8 byte order mark. Useful when the output
// is consumed by tools that treat the BOM as data.
func WithoutBOM() CSVWriterOption {
	return func(w *CSVWriter) {
		w.bom = false
	}
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer, opts ...CSVWriterOption) *CSVWriter {
	w := &CSVWriter{
		baseWriter: newBaseWriter(output),
		bom:        true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the keyword ranking as CSV rows.
func (w *CSVWriter) Write(result *model.AnalysisResult) (int, error) {
	var buf bytes.Buffer
	if w.bom {
		buf.WriteString(utf8BOM)
	}

	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"token", "articleOccurrenceCount", "totalFrequency"}); err != nil {
		return 0, err
	}

	for _, stat := range result.Keywords {
		record := []string{
			stat.Token,
			strconv.Itoa(stat.ArticleCount),
			strconv.Itoa(stat.TotalFrequency),
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
