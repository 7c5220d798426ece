// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui renders paper-renamer's terminal output and prompts.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	accentColor  = color.New(color.FgCyan)
	dimColor     = color.New(color.Faint)
)

// Printer writes user-facing messages. Results go to out, problems to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// NewPrinter creates a Printer writing to out and errOut.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// DisplayMetadata prints the fields extracted from the paper.
func (p *Printer) DisplayMetadata(m types.PaperMetadata) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Extracted metadata:")
	fmt.Fprintf(p.out, "  - First Author: %s\n", accentColor.Sprint(m.FirstAuthor))
	fmt.Fprintf(p.out, "  - Year: %s\n", accentColor.Sprint(m.Year))
	fmt.Fprintf(p.out, "  - Title: %s\n", accentColor.Sprint(m.Title))
}

// DisplayProposal prints the candidate filename ahead of the menu.
func (p *Printer) DisplayProposal(proposed string) {
	fmt.Fprintf(p.out, "\nProposed filename: %s\n\n", accentColor.Sprint(proposed))
}

// DisplaySuccess reports a completed rename.
func (p *Printer) DisplaySuccess(oldName, newPath string) {
	fmt.Fprintln(p.out)
	successColor.Fprintln(p.out, "✓ File renamed successfully!")
	fmt.Fprintf(p.out, "  %s -> %s\n", oldName, newPath)
}

// DisplayCancelled reports that nothing was renamed.
func (p *Printer) DisplayCancelled() {
	fmt.Fprintln(p.out)
	dimColor.Fprintln(p.out, "Operation cancelled.")
}

// ShowError reports a problem on errOut.
func (p *Printer) ShowError(msg string) {
	fmt.Fprintln(p.errOut)
	errorColor.Fprint(p.errOut, "⚠ Error: ")
	fmt.Fprintln(p.errOut, msg)
}

// Infof prints a progress line.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
