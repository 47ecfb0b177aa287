package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/stopword"
	"github.com/newslens/newslens/internal/textclean"
	"github.com/newslens/newslens/internal/tokenizer"
)

// Default extraction settings.
const (
	// DefaultArticleHost is the publisher host whose article pages we know
	// how to parse. Search results pointing anywhere else are skipped.
	DefaultArticleHost = "n.news.naver.com"

	// DefaultContentSelector locates the article body on the publisher's
	// article pages.
	DefaultContentSelector = "#dic_area"

	// DefaultFallbackSelector is tried when the primary selector finds
	// nothing; older article layouts use it.
	DefaultFallbackSelector = ".news_end"

	// DefaultMaxBodySize caps how much of an article page we read.
	// Article pages run well under 1MB; the cap guards against a
	// misbehaving server streaming unbounded data.
	DefaultMaxBodySize = 2 * 1024 * 1024 // 2MB

	// minTokenLen and maxTokenLen bound keyword candidates. Single-rune
	// tokens are nearly always grammar fragments; very long ones are
	// tokenizer misfires on unsegmented runs.
	minTokenLen = 2
	maxTokenLen = 10
)

// Extractor fetches one article and produces its top-N keyword counts.
// Safe for concurrent use: all mutable state lives in method scope.
type Extractor struct {
	// client performs article page fetches. Its timeout bounds each fetch.
	client *http.Client

	// articleHost gates eligibility; only links on this host are fetched.
	articleHost string

	// contentSelector and fallbackSelector locate the article body.
	contentSelector  string
	fallbackSelector string

	// userAgent identifies newslens to the publisher.
	userAgent string

	// maxBodySize caps the bytes read from a page.
	maxBodySize int64
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithArticleHost overrides the eligible article host.
func WithArticleHost(host string) ExtractorOption {
	return func(e *Extractor) {
		e.articleHost = host
	}
}

// WithContentSelector overrides the primary content selector.
func WithContentSelector(sel string) ExtractorOption {
	return func(e *Extractor) {
		e.contentSelector = sel
	}
}

// WithUserAgent overrides the User-Agent header sent to the publisher.
func WithUserAgent(ua string) ExtractorOption {
	return func(e *Extractor) {
		e.userAgent = ua
	}
}

// WithMaxBodySize caps the bytes read from an article page.
func WithMaxBodySize(n int64) ExtractorOption {
	return func(e *Extractor) {
		e.maxBodySize = n
	}
}

// NewExtractor creates an Extractor. The HTTP client is injected so the
// caller controls the timeout and can share a transport with the search
// client; tests inject an httptest client the same way.
func NewExtractor(client *http.Client, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		client:           client,
		articleHost:      DefaultArticleHost,
		contentSelector:  DefaultContentSelector,
		fallbackSelector: DefaultFallbackSelector,
		userAgent:        "newslens/1.0 (+https://github.com/newslens/newslens)",
		maxBodySize:      DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract produces the article's top-N keyword counts.
//
// Two outcomes short-circuit to an empty map with a nil error, because they
// are expected rather than exceptional: a link outside the eligible article
// host, and a page without the content container. Real failures return an
// empty map plus an *ArticleError so callers can account for the skip.
//
// ctx bounds the fetch together with the client timeout; cancellation
// surfaces as a fetch error like any other transport failure.
func (e *Extractor) Extract(ctx context.Context, ref model.ArticleRef, tok tokenizer.Tokenizer, stops stopword.Set, maxKeywords int) (model.ArticleKeywords, error) {
	if !e.eligible(ref.Link) {
		return nil, nil
	}

	if tok == nil {
		// Fail soft: no tokenizer means the article contributes nothing,
		// not that the run dies.
		return nil, &ArticleError{Kind: KindTokenize, Link: ref.Link}
	}

	body, err := e.fetch(ctx, ref.Link)
	if err != nil {
		return nil, &ArticleError{Kind: KindFetch, Link: ref.Link, Err: err}
	}

	text, err := e.contentText(body)
	if err != nil {
		return nil, &ArticleError{Kind: KindParse, Link: ref.Link, Err: err}
	}
	if text == "" {
		// No recognizable content container. Common for video-only and
		// photo-only pages; not an error.
		return nil, nil
	}

	tokens := tok.Tokenize(textclean.Clean(text))
	filtered := filterTokens(tokens, stops)

	return topN(filtered, maxKeywords), nil
}

// eligible reports whether link points at a parseable article page.
func (e *Extractor) eligible(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, e.articleHost)
}

// fetch retrieves the article page, requiring HTTP 200.
func (e *Extractor) fetch(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodySize))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// contentText parses the page and returns the text of the article body
// container, or "" when neither selector matches.
func (e *Extractor) contentText(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", err
	}

	sel := doc.Find(e.contentSelector)
	if sel.Length() == 0 {
		sel = doc.Find(e.fallbackSelector)
	}
	if sel.Length() == 0 {
		return "", nil
	}

	return sel.First().Text(), nil
}

// filterTokens keeps tokens within the length bounds and outside the
// stopword set, preserving order of appearance.
func filterTokens(tokens []string, stops stopword.Set) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		n := len([]rune(t))
		if n < minTokenLen || n > maxTokenLen {
			continue
		}
		if stops.Contains(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// topN counts the filtered tokens and truncates to the n most frequent,
// returning them in rank order. Frequency ties break by first appearance in
// the filtered sequence, so the truncation is deterministic for a fixed
// token stream.
func topN(tokens []string, n int) model.ArticleKeywords {
	if len(tokens) == 0 || n <= 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))

	for i, t := range tokens {
		if _, ok := counts[t]; !ok {
			firstSeen[t] = i
			order = append(order, t)
		}
		counts[t]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		ca, cb := counts[order[a]], counts[order[b]]
		if ca != cb {
			return ca > cb
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if n > len(order) {
		n = len(order)
	}

	out := make(model.ArticleKeywords, 0, n)
	for _, t := range order[:n] {
		out = append(out, model.TokenCount{Token: t, Count: counts[t]})
	}
	return out
}
