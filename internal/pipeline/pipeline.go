package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/newslens/newslens/internal/aggregate"
	"github.com/newslens/newslens/internal/extract"
	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/naver"
	"github.com/newslens/newslens/internal/stopword"
	"github.com/newslens/newslens/internal/tokenizer"
)

// Progress is invoked after each processed article with the number of
// articles processed so far and the total to process. Implementations must
// be safe for concurrent calls when the pipeline runs with concurrency > 1.
type Progress func(processed, total int)

// Pipeline runs one keyword analysis. All dependencies are explicit; there
// is no hidden global state, so two pipelines with different credentials or
// stopword snapshots can run side by side.
type Pipeline struct {
	// search pages through the news search API.
	search *naver.Client

	// extractor produces per-article keyword selections.
	extractor *extract.Extractor

	// tok is the injected tokenizer. May be nil; extraction then fails
	// soft per article.
	tok tokenizer.Tokenizer

	// stops is the stopword snapshot for this run. Edits made elsewhere
	// during the run do not affect it.
	stops stopword.Set

	// pageSize is the search page size, at most 100.
	pageSize int

	// concurrency bounds the article-fetch worker pool. 1 means strictly
	// sequential processing.
	concurrency int

	// limiter spaces article fetches across all workers.
	limiter *rate.Limiter

	// pageDelay is the pause between consecutive search pages. The
	// reference behavior is no delay; it is configurable because the
	// asymmetry with article fetches is documented as questionable.
	pageDelay time.Duration

	// progress is called after each processed article.
	progress Progress

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPageSize sets the search page size. Values above the API maximum
// are clamped to it; the paging offset advances by the clamped size, so
// a page larger than the API returns never skips result positions.
func WithPageSize(n int) Option {
	return func(p *Pipeline) {
		switch {
		case n > naver.MaxDisplay:
			p.pageSize = naver.MaxDisplay
		case n > 0:
			p.pageSize = n
		}
	}
}

// WithConcurrency bounds the article-fetch worker pool.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithArticleDelay sets the minimum spacing between article fetches,
// enforced across all workers by a shared rate limiter. Zero disables
// spacing.
func WithArticleDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		if d > 0 {
			p.limiter = rate.NewLimiter(rate.Every(d), 1)
		} else {
			p.limiter = nil
		}
	}
}

// WithPageDelay sets the pause between search API pages.
func WithPageDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		p.pageDelay = d
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn Progress) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Default pipeline settings.
const (
	// DefaultPageSize is the API's maximum page size; fewer calls per run.
	DefaultPageSize = 100

	// DefaultArticleDelay spaces article fetches to respect the
	// publisher's rate limits.
	DefaultArticleDelay = 100 * time.Millisecond

	// DefaultConcurrency reproduces the sequential reference behavior.
	DefaultConcurrency = 1
)

// New creates a Pipeline. The tokenizer may be nil, in which case every
// article fails soft and the run produces an empty table; callers that can
// detect a missing model up front should warn, not abort.
func New(search *naver.Client, extractor *extract.Extractor, tok tokenizer.Tokenizer, stops stopword.Set, opts ...Option) *Pipeline {
	p := &Pipeline{
		search:      search,
		extractor:   extractor,
		tok:         tok,
		stops:       stops,
		pageSize:    DefaultPageSize,
		concurrency: DefaultConcurrency,
		limiter:     rate.NewLimiter(rate.Every(DefaultArticleDelay), 1),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Run executes one analysis: collect up to targetArticles search results
// for keyword, extract up to topN keywords per article, and return the
// ranked aggregate.
//
// Fatal search failures return a nil result: no partial table is ever
// published. Per-article failures are absorbed and counted in the result's
// Skipped field.
func (p *Pipeline) Run(ctx context.Context, keyword string, targetArticles, topN int) (*model.AnalysisResult, error) {
	if keyword == "" {
		return nil, errors.New("empty search keyword")
	}
	if targetArticles < 1 {
		return nil, fmt.Errorf("invalid target article count %d", targetArticles)
	}
	if topN < 1 {
		return nil, fmt.Errorf("invalid per-article keyword count %d", topN)
	}

	startedAt := time.Now()

	refs, err := p.collect(ctx, keyword, targetArticles)
	if err != nil {
		return nil, err
	}

	p.logger.Info("search results collected",
		"keyword", keyword,
		"requested", targetArticles,
		"collected", len(refs),
	)

	table := aggregate.NewTable()
	var skipped int
	if p.concurrency <= 1 {
		skipped, err = p.processSequential(ctx, refs, topN, table)
	} else {
		skipped, err = p.processConcurrent(ctx, refs, topN, table)
	}
	if err != nil {
		return nil, err
	}

	result := &model.AnalysisResult{
		Keyword:   keyword,
		StartedAt: startedAt,
		TopN:      topN,
		Requested: targetArticles,
		Collected: len(refs),
		Skipped:   skipped,
		Articles:  refs,
		Keywords:  table.Rank(),
	}

	p.logger.Info("analysis complete",
		"keyword", keyword,
		"articles", result.Collected,
		"skipped", result.Skipped,
		"tokens", len(result.Keywords),
		"elapsed", time.Since(startedAt),
	)

	return result, nil
}

// collect pages through the search API until target items are gathered or
// the API signals no more results. Any search failure is fatal.
func (p *Pipeline) collect(ctx context.Context, keyword string, target int) ([]model.ArticleRef, error) {
	refs := make([]model.ArticleRef, 0, target)

	for start := 1; len(refs) < target; start += p.pageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		display := p.pageSize
		if remaining := target - len(refs); remaining < display {
			display = remaining
		}

		page, err := p.search.Search(ctx, keyword, display, start)
		if err != nil {
			return nil, fmt.Errorf("search page at offset %d failed: %w", start, err)
		}

		p.logger.Debug("search page fetched",
			"start", start,
			"display", display,
			"items", len(page.Items),
			"total", page.Total,
		)

		if len(page.Items) == 0 {
			break
		}
		refs = append(refs, page.Items...)

		if p.pageDelay > 0 && len(refs) < target {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.pageDelay):
			}
		}
	}

	return refs, nil
}

// processSequential extracts articles one at a time in search-result order.
func (p *Pipeline) processSequential(ctx context.Context, refs []model.ArticleRef, topN int, table *aggregate.Table) (int, error) {
	var skipped int

	for i, ref := range refs {
		// Cancellation check between articles; the fetch itself also
		// honors ctx.
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if err := p.wait(ctx); err != nil {
			return 0, err
		}

		keywords := p.extractOne(ctx, ref, topN)
		if len(keywords) == 0 {
			skipped++
		}
		table.FoldIn(ref.Position, keywords)

		p.report(i+1, len(refs))
	}

	return skipped, nil
}

// processConcurrent extracts articles through a bounded worker pool,
// then folds all results in search-result order so the final ranking is
// identical to a sequential run over the same responses.
func (p *Pipeline) processConcurrent(ctx context.Context, refs []model.ArticleRef, topN int, table *aggregate.Table) (int, error) {
	results := make([]model.ArticleKeywords, len(refs))
	var mu sync.Mutex
	var processed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			if err := p.wait(gctx); err != nil {
				return err
			}

			keywords := p.extractOne(gctx, ref, topN)

			mu.Lock()
			results[i] = keywords
			mu.Unlock()

			p.report(int(processed.Add(1)), len(refs))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var skipped int
	for i, ref := range refs {
		if len(results[i]) == 0 {
			skipped++
		}
		table.FoldIn(ref.Position, results[i])
	}

	return skipped, nil
}

// extractOne runs a single extraction, absorbing recoverable failures.
func (p *Pipeline) extractOne(ctx context.Context, ref model.ArticleRef, topN int) model.ArticleKeywords {
	keywords, err := p.extractor.Extract(ctx, ref, p.tok, p.stops, topN)
	if err != nil {
		var ae *extract.ArticleError
		if errors.As(err, &ae) {
			p.logger.Debug("article skipped",
				"link", ae.Link,
				"kind", ae.Kind.String(),
				"error", err,
			)
		} else {
			p.logger.Debug("article skipped", "link", ref.Link, "error", err)
		}
		return nil
	}
	return keywords
}

// wait blocks until the shared rate limiter admits the next article fetch.
func (p *Pipeline) wait(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}

// report invokes the progress callback when one is configured.
func (p *Pipeline) report(processed, total int) {
	if p.progress != nil {
		p.progress(processed, total)
	}
}
