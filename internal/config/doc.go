// Package config provides configuration structures and utilities for newslens.
// It defines the main options for article collection, keyword extraction,
// output format selection, and API credential management.
package config
