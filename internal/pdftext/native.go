// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

// NativeExtractor reads PDFs with the pure-Go ledongthuc/pdf reader.
type NativeExtractor struct {
	maxPages int
	maxChars int
}

// NewNativeExtractor creates a native extractor with cfg's page and
// character limits.
func NewNativeExtractor(cfg types.PDFConfig) *NativeExtractor {
	cfg = withDefaults(cfg)
	return &NativeExtractor{maxPages: cfg.MaxPages, maxChars: cfg.MaxChars}
}

// Extract returns the text of the first pages of the PDF at path.
func (n *NativeExtractor) Extract(path string) (text string, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > n.maxPages {
		pages = n.maxPages
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(pageText)
	}

	return finish(sb.String(), n.maxChars)
}
