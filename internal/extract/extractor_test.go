package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/stopword"
	"github.com/newslens/newslens/internal/tokenizer"
)

// articlePage wraps body text in the publisher's article markup.
func articlePage(body string) string {
	return `<html><body><div id="wrap"><article id="dic_area">` + body + `</article></div></body></html>`
}

// newTestExtractor serves the given page and returns an extractor whose
// eligible host is the test server's.
func newTestExtractor(t *testing.T, handler http.HandlerFunc) (*Extractor, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(srv.Client(), WithArticleHost(u.Host))
	return e, srv.URL
}

// TestExtract tests the full clean-tokenize-filter-count-truncate path.
func TestExtract(t *testing.T) {
	t.Parallel()

	e, base := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(articlePage("반도체 수출! 반도체 시장, 기자 A씨 2024")))
	})

	tok := tokenizer.NewPatternTokenizer()
	stops := stopword.NewSet("기자")

	got, err := e.Extract(context.Background(), model.ArticleRef{Link: base + "/article/1"}, tok, stops, 10)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	// "기자" is stopped, "A씨" cleans to "씨" (too short), "2024" is removed
	// by cleaning, "수출!" cleans to "수출".
	want := model.KeywordCounts{"반도체": 2, "수출": 1, "시장": 1}
	if !reflect.DeepEqual(got.Counts(), want) {
		t.Errorf("Extract = %v, want %v", got.Counts(), want)
	}
	if got[0].Token != "반도체" {
		t.Errorf("most frequent token should rank first, got %v", got)
	}
}

// TestExtractTruncatesToTopN verifies the per-article cap and its
// first-occurrence tie-break.
func TestExtractTruncatesToTopN(t *testing.T) {
	t.Parallel()

	// 나라 and 경제 both occur twice; 나라 appears first. 금리 occurs three
	// times, 환율 once.
	e, base := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(articlePage("금리 나라 경제 나라 경제 금리 금리 환율")))
	})

	got, err := e.Extract(context.Background(), model.ArticleRef{Link: base + "/a"},
		tokenizer.NewPatternTokenizer(), stopword.NewSet(), 2)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := model.ArticleKeywords{
		{Token: "금리", Count: 3},
		{Token: "나라", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v (나라 should beat 경제 on first occurrence)", got, want)
	}
}

// TestExtractShortCircuits covers the expected empty-map outcomes that are
// not errors.
func TestExtractShortCircuits(t *testing.T) {
	t.Parallel()

	t.Run("ineligible host", func(t *testing.T) {
		t.Parallel()

		called := false
		e, _ := newTestExtractor(t, func(http.ResponseWriter, *http.Request) {
			called = true
		})

		got, err := e.Extract(context.Background(),
			model.ArticleRef{Link: "https://press.example.com/a/1"},
			tokenizer.NewPatternTokenizer(), stopword.NewSet(), 10)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
		if called {
			t.Error("ineligible link must not be fetched")
		}
	})

	t.Run("missing content container", func(t *testing.T) {
		t.Parallel()

		e, base := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body><p>no article here</p></body></html>"))
		})

		got, err := e.Extract(context.Background(), model.ArticleRef{Link: base + "/a"},
			tokenizer.NewPatternTokenizer(), stopword.NewSet(), 10)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("fallback selector is used", func(t *testing.T) {
		t.Parallel()

		e, base := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><body><div class="news_end">환율 급등</div></body></html>`))
		})

		got, err := e.Extract(context.Background(), model.ArticleRef{Link: base + "/a"},
			tokenizer.NewPatternTokenizer(), stopword.NewSet(), 10)
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		want := model.KeywordCounts{"환율": 1, "급등": 1}
		if !reflect.DeepEqual(got.Counts(), want) {
			t.Errorf("Extract = %v, want %v", got.Counts(), want)
		}
	})
}

// TestExtractFailures verifies recoverable failures carry typed kinds.
func TestExtractFailures(t *testing.T) {
	t.Parallel()

	t.Run("non-200 status is a fetch error", func(t *testing.T) {
		t.Parallel()

		e, base := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		got, err := e.Extract(context.Background(), model.ArticleRef{Link: base + "/gone"},
			tokenizer.NewPatternTokenizer(), stopword.NewSet(), 10)

		var ae *ArticleError
		if !errors.As(err, &ae) {
			t.Fatalf("expected *ArticleError, got %v", err)
		}
		if ae.Kind != KindFetch {
			t.Errorf("expected KindFetch, got %s", ae.Kind)
		}
		if len(got) != 0 {
			t.Errorf("failed article must contribute empty map, got %v", got)
		}
	})

	t.Run("unreachable server is a fetch error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		u, _ := url.Parse(srv.URL)
		srv.Close() // force connection refused

		e := NewExtractor(http.DefaultClient, WithArticleHost(u.Host))
		_, err := e.Extract(context.Background(), model.ArticleRef{Link: srv.URL + "/a"},
			tokenizer.NewPatternTokenizer(), stopword.NewSet(), 10)

		var ae *ArticleError
		if !errors.As(err, &ae) {
			t.Fatalf("expected *ArticleError, got %v", err)
		}
		if ae.Kind != KindFetch {
			t.Errorf("expected KindFetch, got %s", ae.Kind)
		}
	})

	t.Run("nil tokenizer is a tokenize error", func(t *testing.T) {
		t.Parallel()

		e, base := newTestExtractor(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(articlePage("본문")))
		})

		got, err := e.Extract(context.Background(), model.ArticleRef{Link: base + "/a"},
			nil, stopword.NewSet(), 10)

		var ae *ArticleError
		if !errors.As(err, &ae) {
			t.Fatalf("expected *ArticleError, got %v", err)
		}
		if ae.Kind != KindTokenize {
			t.Errorf("expected KindTokenize, got %s", ae.Kind)
		}
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})
}

// TestFilterTokens tests the length and stopword filter in isolation.
func TestFilterTokens(t *testing.T) {
	t.Parallel()

	stops := stopword.NewSet("기자")
	in := []string{"가", "기자", "경제", "아주아주아주아주아주긴말", "수출"}

	got := filterTokens(in, stops)
	want := []string{"경제", "수출"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterTokens = %v, want %v", got, want)
	}
}

// TestTopN tests truncation boundaries.
func TestTopN(t *testing.T) {
	t.Parallel()

	t.Run("n larger than vocabulary", func(t *testing.T) {
		t.Parallel()

		got := topN([]string{"경제", "수출"}, 10)
		want := model.ArticleKeywords{
			{Token: "경제", Count: 1},
			{Token: "수출", Count: 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("topN = %v, want %v", got, want)
		}
	})

	t.Run("zero n", func(t *testing.T) {
		t.Parallel()

		if got := topN([]string{"경제"}, 0); len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("empty stream", func(t *testing.T) {
		t.Parallel()

		if got := topN(nil, 5); len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})
}
