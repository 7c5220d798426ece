// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewPrinter(&out, &errOut), &out, &errOut
}

func TestDisplayMetadata(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.DisplayMetadata(types.PaperMetadata{FirstAuthor: "Vaswani", Year: "2017", Title: "Attention Is All You Need"})

	assert.Equal(t, "\nExtracted metadata:\n"+
		"  - First Author: Vaswani\n"+
		"  - Year: 2017\n"+
		"  - Title: Attention Is All You Need\n", out.String())
}

func TestDisplaySuccess(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.DisplaySuccess("1706.03762.pdf", "/papers/vaswani-2017-attention-is-all-you-need.pdf")

	assert.Contains(t, out.String(), "File renamed successfully!")
	assert.Contains(t, out.String(), "1706.03762.pdf -> /papers/vaswani-2017-attention-is-all-you-need.pdf")
}

func TestShowError(t *testing.T) {
	p, out, errOut := newTestPrinter()

	p.ShowError("target file already exists")

	assert.Empty(t, out.String())
	assert.Equal(t, "\n⚠ Error: target file already exists\n", errOut.String())
}

func TestDisplayCancelledAndProposal(t *testing.T) {
	p, out, _ := newTestPrinter()

	p.DisplayProposal("a-2020-b.pdf")
	p.DisplayCancelled()

	assert.Equal(t, "\nProposed filename: a-2020-b.pdf\n\n\nOperation cancelled.\n", out.String())
}
