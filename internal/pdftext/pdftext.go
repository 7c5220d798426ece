// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the leading text of a PDF, where an academic
// paper keeps its title, authors and date. Backends: a pure-Go reader and
// the poppler pdftotext binary.
package pdftext

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

const (
	// DefaultMaxPages is the number of leading pages read when unset.
	DefaultMaxPages = 3
	// DefaultMaxChars caps the returned text when unset.
	DefaultMaxChars = 3000
)

// ErrNoText is returned when a PDF yields no text, typically a scanned image.
var ErrNoText = errors.New("no text could be extracted from the PDF. The file may be a scanned image")

// Extractor returns the leading text of the PDF at path.
type Extractor interface {
	Extract(path string) (string, error)
}

// New returns the extractor selected by cfg.Backend.
func New(cfg types.PDFConfig) (Extractor, error) {
	cfg = withDefaults(cfg)
	switch cfg.Backend {
	case types.BackendNative, "":
		return NewNativeExtractor(cfg), nil
	case types.BackendPdftotext:
		return NewPdftotextExtractor(cfg)
	default:
		return nil, fmt.Errorf("unknown extractor backend %q (want %s or %s)", cfg.Backend, types.BackendNative, types.BackendPdftotext)
	}
}

func withDefaults(cfg types.PDFConfig) types.PDFConfig {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}
	return cfg
}

// finish rejects blank text and truncates to maxChars runes.
func finish(text string, maxChars int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return truncate(text, maxChars), nil
}

// truncate cuts s to at most n runes without splitting a multi-byte
// character.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
