package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandler_SanitizesSensitiveKeys tests that sensitive keys are sanitized.
func TestSecureHandler_SanitizesSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{
			name:     "client secret header is sanitized",
			key:      "X-Naver-Client-Secret",
			value:    "a1b2c3d4e5",
			wantMask: true,
		},
		{
			name:     "client_secret key is sanitized",
			key:      "client_secret",
			value:    "a1b2c3d4e5",
			wantMask: true,
		},
		{
			name:     "authorization key is sanitized",
			key:      "authorization",
			value:    "Bearer token123",
			wantMask: true,
		},
		{
			name:     "password key is sanitized",
			key:      "password",
			value:    "secretpassword",
			wantMask: true,
		},
		{
			name:     "api_key key is sanitized",
			key:      "api_key",
			value:    "sk_live_123456789",
			wantMask: true,
		},
		{
			name:     "keyword containing key is sanitized",
			key:      "naver_client_secret",
			value:    "a1b2c3d4e5",
			wantMask: true,
		},
		{
			name:     "query key is not sanitized",
			key:      "query",
			value:    "경제",
			wantMask: false,
		},
		{
			name:     "url key is not sanitized",
			key:      "url",
			value:    "https://n.news.naver.com/article/1",
			wantMask: false,
		},
		{
			name:     "keyboard is not sanitized despite containing key",
			key:      "keyboard",
			value:    "layout",
			wantMask: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test message", tt.key, tt.value)

			output := buf.String()
			if tt.wantMask {
				if !strings.Contains(output, MaskValue) {
					t.Errorf("expected masked value for key %q, got %q", tt.key, output)
				}
				if strings.Contains(output, tt.value) {
					t.Errorf("sensitive value leaked for key %q: %q", tt.key, output)
				}
			} else {
				if strings.Contains(output, MaskValue) {
					t.Errorf("unexpected mask for key %q: %q", tt.key, output)
				}
				if !strings.Contains(output, tt.value) {
					t.Errorf("expected value %q in output %q", tt.value, output)
				}
			}
		})
	}
}

// TestSecureHandler_SanitizesSensitiveValues tests pattern-based value detection.
func TestSecureHandler_SanitizesSensitiveValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantMask bool
	}{
		{
			name:     "JWT token",
			value:    "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc123",
			wantMask: true,
		},
		{
			name:     "bearer token",
			value:    "Bearer abc123def456",
			wantMask: true,
		},
		{
			name:     "long alphanumeric string",
			value:    "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5",
			wantMask: true,
		},
		{
			name:     "short plain value",
			value:    "hello",
			wantMask: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test message", "detail", tt.value)

			masked := strings.Contains(buf.String(), MaskValue)
			if masked != tt.wantMask {
				t.Errorf("value %q: masked = %v, want %v", tt.value, masked, tt.wantMask)
			}
		})
	}
}

// TestSecureHandler_SanitizesGroups tests recursive group sanitization.
func TestSecureHandler_SanitizesGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("request",
		slog.Group("headers",
			"client_secret", "a1b2c3",
			"user-agent", "newslens/1.0",
		),
	)

	output := buf.String()
	if strings.Contains(output, "a1b2c3") {
		t.Errorf("secret inside group leaked: %q", output)
	}
	if !strings.Contains(output, "newslens/1.0") {
		t.Errorf("non-sensitive group value missing: %q", output)
	}
}

// TestSecureHandler_WithAttrs tests that pre-bound attributes are sanitized.
func TestSecureHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	bound := logger.With("client_secret", "a1b2c3")

	bound.Info("bound message")

	output := buf.String()
	if strings.Contains(output, "a1b2c3") {
		t.Errorf("bound secret leaked: %q", output)
	}
	if !strings.Contains(output, MaskValue) {
		t.Errorf("expected mask in output %q", output)
	}
}

// TestNewSecureLogger tests level configuration.
func TestNewSecureLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)

		logger.Debug("debug message")
		if !strings.Contains(buf.String(), "debug message") {
			t.Error("expected debug output in verbose mode")
		}
	})

	t.Run("non-verbose suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)

		logger.Info("info message")
		if buf.Len() != 0 {
			t.Errorf("expected no output below warn level, got %q", buf.String())
		}
	})
}

// TestNewSecureJSONLogger tests the JSON variant masks secrets.
func TestNewSecureJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSecureJSONLogger(&buf, true)

	logger.Warn("credentials loaded", "client_secret", "a1b2c3")

	output := buf.String()
	if strings.Contains(output, "a1b2c3") {
		t.Errorf("secret leaked in JSON output: %q", output)
	}
	if !strings.Contains(output, MaskValue) {
		t.Errorf("expected mask in JSON output %q", output)
	}
}
