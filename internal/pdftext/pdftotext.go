// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec. Stderr is
// discarded; poppler prints font warnings there.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &out
	err := cmd.Run()
	return out.Bytes(), err
}

var defaultExec executor = &osExecutor{}

// PdftotextExtractor shells out to poppler's pdftotext.
type PdftotextExtractor struct {
	maxPages int
	maxChars int
	exec     executor
}

// NewPdftotextExtractor verifies that pdftotext is on PATH and returns an
// extractor using it.
func NewPdftotextExtractor(cfg types.PDFConfig) (*PdftotextExtractor, error) {
	return newPdftotextExtractor(cfg, defaultExec)
}

func newPdftotextExtractor(cfg types.PDFConfig, exec executor) (*PdftotextExtractor, error) {
	if _, err := exec.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not available (install poppler-utils): %w", binPdftotext, err)
	}
	cfg = withDefaults(cfg)
	return &PdftotextExtractor{maxPages: cfg.MaxPages, maxChars: cfg.MaxChars, exec: exec}, nil
}

// Extract runs pdftotext over the first pages of path and returns its output.
func (p *PdftotextExtractor) Extract(path string) (string, error) {
	args := []string{"-f", "1", "-l", strconv.Itoa(p.maxPages), "-layout", "-enc", "UTF-8", path, "-"}
	out, err := p.exec.Output(binPdftotext, args...)
	if err != nil {
		return "", fmt.Errorf("running %s on %s: %w", binPdftotext, path, err)
	}
	return finish(string(out), p.maxChars)
}
