package naver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient wires a Client against an httptest handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.Client(), "test-id", "test-secret", WithBaseURL(srv.URL))
}

// TestClientSearch tests the success path, including parameter encoding,
// credential headers, title cleanup, and position assignment.
func TestClientSearch(t *testing.T) {
	t.Parallel()

	const responseJSON = `{
		"total": 2340,
		"start": 101,
		"display": 2,
		"items": [
			{
				"title": "<b>반도체</b> 수출 &quot;역대 최대&quot;",
				"originallink": "https://press.example.com/a/1",
				"link": "https://n.news.naver.com/mnews/article/001/0001",
				"pubDate": "Mon, 02 Jan 2006 15:04:05 +0900"
			},
			{
				"title": "시장 전망",
				"originallink": "",
				"link": "https://press.example.com/a/2",
				"pubDate": "not a date"
			}
		]
	}`

	var gotQuery, gotID, gotSecret string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotID = r.Header.Get("X-Naver-Client-Id")
		gotSecret = r.Header.Get("X-Naver-Client-Secret")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responseJSON))
	})

	page, err := client.Search(context.Background(), "반도체", 2, 101)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotID != "test-id" || gotSecret != "test-secret" {
		t.Errorf("credential headers not sent: id=%q secret=%q", gotID, gotSecret)
	}
	if gotQuery != "query=%EB%B0%98%EB%8F%84%EC%B2%B4&display=2&start=101" {
		t.Errorf("unexpected query string: %s", gotQuery)
	}

	if page.Total != 2340 {
		t.Errorf("expected total 2340, got %d", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}

	first := page.Items[0]
	if first.Title != `반도체 수출 "역대 최대"` {
		t.Errorf("title not cleaned: %q", first.Title)
	}
	if first.Position != 100 {
		t.Errorf("expected position 100, got %d", first.Position)
	}
	if first.PublishedAt.IsZero() {
		t.Error("expected parsed publication date")
	}
	if got := first.PublishedAt.Format(time.RFC1123Z); got != "Mon, 02 Jan 2006 15:04:05 +0900" {
		t.Errorf("unexpected publication date: %s", got)
	}

	second := page.Items[1]
	if second.Position != 101 {
		t.Errorf("expected position 101, got %d", second.Position)
	}
	if !second.PublishedAt.IsZero() {
		t.Error("malformed date should keep zero time")
	}
}

// TestClientSearchErrorTaxonomy verifies each failure class maps to its
// distinct error kind.
func TestClientSearchErrorTaxonomy(t *testing.T) {
	t.Parallel()

	t.Run("401 maps to ErrInvalidCredentials", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Search(context.Background(), "테스트", 1, 1)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("403 maps to ErrQuotaExceeded", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.Search(context.Background(), "테스트", 1, 1)
		if !errors.Is(err, ErrQuotaExceeded) {
			t.Errorf("expected ErrQuotaExceeded, got %v", err)
		}
	})

	t.Run("429 maps to ErrQuotaExceeded", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.Search(context.Background(), "테스트", 1, 1)
		if !errors.Is(err, ErrQuotaExceeded) {
			t.Errorf("expected ErrQuotaExceeded, got %v", err)
		}
	})

	t.Run("500 maps to SearchError with status", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Search(context.Background(), "테스트", 1, 1)
		var se *SearchError
		if !errors.As(err, &se) {
			t.Fatalf("expected *SearchError, got %v", err)
		}
		if se.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", se.StatusCode)
		}
	})

	t.Run("transport failure maps to SearchError", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // force connection refused

		client := NewClient(http.DefaultClient, "id", "secret", WithBaseURL(srv.URL))
		_, err := client.Search(context.Background(), "테스트", 1, 1)

		var se *SearchError
		if !errors.As(err, &se) {
			t.Fatalf("expected *SearchError, got %v", err)
		}
		if se.StatusCode != 0 {
			t.Errorf("expected status 0 for transport failure, got %d", se.StatusCode)
		}
	})

	t.Run("corrupt body maps to SearchError", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{broken"))
		})

		_, err := client.Search(context.Background(), "테스트", 1, 1)
		var se *SearchError
		if !errors.As(err, &se) {
			t.Errorf("expected *SearchError, got %v", err)
		}
	})
}

// TestClientSearchClampsParameters verifies display and start are clamped
// to the API's documented ranges.
func TestClientSearchClampsParameters(t *testing.T) {
	t.Parallel()

	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"total":0,"start":1,"display":100,"items":[]}`))
	})

	if _, err := client.Search(context.Background(), "q", 500, 0); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotQuery != "query=q&display=100&start=1" {
		t.Errorf("parameters not clamped: %s", gotQuery)
	}
}

// TestClientVerify tests the credential probe.
func TestClientVerify(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"total":1,"start":1,"display":1,"items":[]}`))
		})

		if err := client.Verify(context.Background(), "테스트"); err != nil {
			t.Errorf("Verify failed: %v", err)
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		if err := client.Verify(context.Background(), "테스트"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
