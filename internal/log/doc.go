// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of sensitive values (API secrets, tokens, cookies)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Security Features
//
// The SecureHandler automatically sanitizes sensitive information in log output:
//   - HTTP headers (Authorization, Cookie, X-Naver-Client-Secret)
//   - Secret values detected by pattern matching (passwords, tokens, keys)
//   - News API client secrets loaded from configuration
//
// Even in verbose mode, sensitive values are masked to prevent accidental
// exposure of secrets in logs that may be shared or stored.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("search request sent",
//	    "client_secret", "a1b2c3",  // Will be sanitized to "***REDACTED***"
//	    "query", "경제",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
