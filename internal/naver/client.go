package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/textclean"
)

// DefaultBaseURL is the production endpoint of the news search API.
const DefaultBaseURL = "https://openapi.naver.com/v1/search/news.json"

// MaxDisplay is the largest page size the API accepts.
const MaxDisplay = 100

// pubDateLayout is the RFC1123Z-style format the API uses for pubDate,
// e.g. "Mon, 02 Jan 2006 15:04:05 +0900".
const pubDateLayout = time.RFC1123Z

// Client calls the news search API with a fixed credential pair.
//
// Design decision: The HTTP client is injected rather than constructed here
// so that tests can point the client at an httptest server and callers can
// share one transport across the search client and the article fetcher.
type Client struct {
	// httpClient performs the requests. Must not be nil.
	httpClient *http.Client

	// baseURL is the search endpoint. Overridable for tests.
	baseURL string

	// clientID and clientSecret authenticate every request.
	clientID     string
	clientSecret string

	// userAgent identifies newslens to the API.
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the search endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a search API client.
func NewClient(httpClient *http.Client, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		httpClient:   httpClient,
		baseURL:      DefaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    "newslens/1.0 (+https://github.com/newslens/newslens)",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// searchResponse is the wire shape of a successful API response.
type searchResponse struct {
	Total   int          `json:"total"`
	Start   int          `json:"start"`
	Display int          `json:"display"`
	Items   []searchItem `json:"items"`
}

// searchItem is one result on the wire. Title may contain highlight markup
// and entities that must be stripped before display.
type searchItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	PubDate      string `json:"pubDate"` //nolint:tagliatelle // API field name
}

// Page is one page of search results.
type Page struct {
	// Total is the number of results the API claims to have overall.
	Total int

	// Items are the results of this page, in API order, with titles
	// already cleaned for display.
	Items []model.ArticleRef
}

// Search fetches one page of results for query.
//
// display is clamped to [1,100] and start floored to 1, matching the API's
// documented parameter ranges. The positions recorded on the returned refs
// are derived from start, so refs from different pages of the same query
// order consistently.
func (c *Client) Search(ctx context.Context, query string, display, start int) (*Page, error) {
	if display < 1 || display > MaxDisplay {
		display = MaxDisplay
	}
	if start < 1 {
		start = 1
	}

	endpoint := fmt.Sprintf("%s?query=%s&display=%d&start=%d",
		c.baseURL, url.QueryEscape(query), display, start)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &SearchError{Err: err}
	}

	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SearchError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized:
		return nil, ErrInvalidCredentials
	case http.StatusForbidden, http.StatusTooManyRequests:
		return nil, ErrQuotaExceeded
	default:
		return nil, &SearchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SearchError{Err: err}
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &SearchError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	page := &Page{
		Total: sr.Total,
		Items: make([]model.ArticleRef, 0, len(sr.Items)),
	}

	for i, item := range sr.Items {
		ref := model.ArticleRef{
			Position:     start - 1 + i,
			Title:        textclean.StripTags(item.Title),
			Link:         item.Link,
			OriginalLink: item.OriginalLink,
		}
		// A malformed date keeps the zero time; the ref is still usable
		// for fetching and display.
		if ts, err := time.Parse(pubDateLayout, item.PubDate); err == nil {
			ref.PublishedAt = ts
		}
		page.Items = append(page.Items, ref)
	}

	return page, nil
}

// Verify performs a minimal one-item search to confirm the credential pair
// works before a run begins. It returns the classified error on failure.
func (c *Client) Verify(ctx context.Context, probe string) error {
	_, err := c.Search(ctx, probe, 1, 1)
	return err
}
