// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow runs one paper-renamer invocation: extract text,
// extract metadata, confirm the proposed filename with the user, rename.
package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paper-renamer/internal/confirm"
	"github.com/pdiddy/paper-renamer/internal/filename"
	"github.com/pdiddy/paper-renamer/internal/rename"
	"github.com/pdiddy/paper-renamer/pkg/types"
)

// TextExtractor returns the leading text of a PDF.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// MetadataExtractor derives paper metadata from text with a language model.
type MetadataExtractor interface {
	ResolveModel(ctx context.Context, model string) (string, error)
	ExtractMetadata(ctx context.Context, model, text string) (types.PaperMetadata, error)
}

// UI is the terminal surface the workflow drives.
type UI interface {
	confirm.Prompter
	Confirm(message string, def bool) (bool, error)
	Spin(msg string) (stop func())
	DisplayMetadata(m types.PaperMetadata)
	DisplaySuccess(oldName, newPath string)
	DisplayCancelled()
}

// Workflow holds the collaborators for one run.
type Workflow struct {
	Text  TextExtractor
	Meta  MetadataExtractor
	UI    UI
	Model string

	// Prompter overrides UI for the confirmation loop (e.g. confirm.AutoAccept).
	Prompter confirm.Prompter

	Log *slog.Logger
}

// Result describes how a run ended.
type Result struct {
	State    confirm.State
	Metadata types.PaperMetadata
	NewPath  string
}

// Proposal is what Inspect reports for a paper.
type Proposal struct {
	Path     string              `yaml:"path"`
	Model    string              `yaml:"model"`
	Metadata types.PaperMetadata `yaml:"metadata"`
	Filename string              `yaml:"proposed_filename"`
}

// Run proposes a new name for the PDF at path and renames it once the user
// accepts. A cancelled run returns a Cancelled result and a nil error.
func (w *Workflow) Run(ctx context.Context, path string) (Result, error) {
	original, err := checkInput(path)
	if err != nil {
		return Result{}, err
	}

	meta, _, err := w.metadata(ctx, path, true)
	if err != nil {
		return Result{}, err
	}
	w.UI.DisplayMetadata(meta)

	prompter := w.Prompter
	if prompter == nil {
		prompter = w.UI
	}
	outcome, err := confirm.Run(prompter, original, meta)
	if err != nil {
		return Result{}, err
	}

	if outcome.State == confirm.Cancelled {
		w.logger().Debug("workflow.cancelled", "path", path)
		w.UI.DisplayCancelled()
		return Result{State: confirm.Cancelled, Metadata: outcome.Metadata}, nil
	}

	newPath, err := rename.Rename(path, outcome.Filename)
	if err != nil {
		return Result{}, fmt.Errorf("failed to rename file: %w", err)
	}
	w.logger().Info("workflow.renamed", "from", path, "to", newPath)
	w.UI.DisplaySuccess(original, newPath)

	return Result{State: confirm.Accepted, Metadata: outcome.Metadata, NewPath: newPath}, nil
}

// Inspect extracts metadata and the proposed filename without prompting
// or renaming.
func (w *Workflow) Inspect(ctx context.Context, path string) (Proposal, error) {
	if _, err := checkInput(path); err != nil {
		return Proposal{}, err
	}
	meta, model, err := w.metadata(ctx, path, false)
	if err != nil {
		return Proposal{}, err
	}
	return Proposal{
		Path:     path,
		Model:    model,
		Metadata: meta,
		Filename: filename.Build(meta),
	}, nil
}

// checkInput requires a .pdf path naming a regular file and returns its
// base name.
func checkInput(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), filename.Extension) {
		return "", fmt.Errorf("file must be a PDF (*.pdf): %s", path)
	}
	if err := rename.CheckSource(path); err != nil {
		return "", err
	}
	return rename.BaseName(path)
}

// metadata extracts the paper's text and asks the model for its metadata,
// returning the model used. When text extraction fails and manual is set,
// the user may type the fields in instead; the model is then empty.
func (w *Workflow) metadata(ctx context.Context, path string, manual bool) (types.PaperMetadata, string, error) {
	stop := w.UI.Spin("Analyzing PDF...")
	text, err := w.Text.Extract(path)
	stop()
	if err != nil {
		w.logger().Debug("workflow.extract_failed", "path", path, "error", err)
		if !manual {
			return types.PaperMetadata{}, "", fmt.Errorf("failed to extract text from PDF: %w", err)
		}
		meta, err := w.manualMetadata(err)
		return meta, "", err
	}

	model, err := w.Meta.ResolveModel(ctx, w.Model)
	if err != nil {
		return types.PaperMetadata{}, "", err
	}

	stop = w.UI.Spin(fmt.Sprintf("Extracting metadata using LLM (model: %s)...", model))
	meta, err := w.Meta.ExtractMetadata(ctx, model, text)
	stop()
	if err != nil {
		return types.PaperMetadata{}, "", fmt.Errorf("failed to extract metadata using LLM: %w", err)
	}
	return meta, model, nil
}

// manualMetadata offers manual entry after extractErr; declining returns
// extractErr.
func (w *Workflow) manualMetadata(extractErr error) (types.PaperMetadata, error) {
	w.UI.ShowError(extractErr.Error())
	ok, err := w.UI.Confirm("Would you like to enter metadata manually?", false)
	if err != nil {
		return types.PaperMetadata{}, err
	}
	if !ok {
		return types.PaperMetadata{}, fmt.Errorf("failed to extract text from PDF: %w", extractErr)
	}

	var m types.PaperMetadata
	for _, f := range []struct {
		field types.MetadataField
		label string
	}{
		{types.FieldAuthor, "First author (last name)"},
		{types.FieldYear, "Year"},
		{types.FieldTitle, "Title"},
	} {
		v, err := w.UI.Input(f.label, "")
		if err != nil {
			return types.PaperMetadata{}, err
		}
		m = m.With(f.field, strings.TrimSpace(v))
	}
	return m, nil
}

func (w *Workflow) logger() *slog.Logger {
	if w.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w.Log
}
