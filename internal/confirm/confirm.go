// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package confirm implements the interactive accept/cancel/edit loop that
// runs before a paper is renamed. The loop is driven by a Prompter so it
// can be scripted in tests.
package confirm

import (
	"fmt"

	"github.com/pdiddy/paper-renamer/internal/filename"
	"github.com/pdiddy/paper-renamer/pkg/types"
)

// Intent is the user's decision for a proposed filename.
type Intent int

const (
	Accept Intent = iota
	Cancel
	EditFilename
	EditAuthor
	EditYear
	EditTitle
)

// Intents lists every intent in menu order.
var Intents = []Intent{Accept, Cancel, EditFilename, EditAuthor, EditYear, EditTitle}

// String returns the menu label for i.
func (i Intent) String() string {
	switch i {
	case Accept:
		return "Yes - rename the file"
	case Cancel:
		return "No - cancel"
	case EditFilename:
		return "Edit - modify filename"
	case EditAuthor:
		return "Edit author"
	case EditYear:
		return "Edit year"
	case EditTitle:
		return "Edit title"
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// field maps a field-editing intent to the metadata field it changes.
func (i Intent) field() (types.MetadataField, bool) {
	switch i {
	case EditAuthor:
		return types.FieldAuthor, true
	case EditYear:
		return types.FieldYear, true
	case EditTitle:
		return types.FieldTitle, true
	}
	return "", false
}

// State is a terminal state of the loop.
type State int

const (
	Accepted State = iota + 1
	Cancelled
)

func (s State) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Prompter obtains decisions from the user.
type Prompter interface {
	// Choose asks what to do with the proposed filename.
	Choose(original, proposed string) (Intent, error)
	// Input asks for a single line of text, pre-filled with def.
	Input(label, def string) (string, error)
	// ShowError reports a recoverable problem before the next prompt.
	ShowError(msg string)
}

// Outcome is the result of a completed loop.
type Outcome struct {
	State    State
	Filename string
	Metadata types.PaperMetadata
}

// Run proposes the filename built from meta and loops until the user
// accepts or cancels. An accepted filename has always passed
// filename.Validate; a failed validation returns to the proposal.
// Errors from the prompter abort the loop.
func Run(p Prompter, original string, meta types.PaperMetadata) (Outcome, error) {
	proposed := filename.Build(meta)

	for {
		intent, err := p.Choose(original, proposed)
		if err != nil {
			return Outcome{}, fmt.Errorf("reading choice: %w", err)
		}

		switch intent {
		case Accept:
			if err := filename.Validate(proposed); err != nil {
				p.ShowError(fmt.Sprintf("%v. Please try again.", err))
				continue
			}
			return Outcome{State: Accepted, Filename: proposed, Metadata: meta}, nil

		case Cancel:
			return Outcome{State: Cancelled, Filename: proposed, Metadata: meta}, nil

		case EditFilename:
			edited, err := p.Input("Filename", proposed)
			if err != nil {
				return Outcome{}, fmt.Errorf("editing filename: %w", err)
			}
			proposed = filename.EnsureExtension(edited)

		case EditAuthor, EditYear, EditTitle:
			f, _ := intent.field()
			value, err := p.Input(fieldLabel(f), meta.Get(f))
			if err != nil {
				return Outcome{}, fmt.Errorf("editing %s: %w", f, err)
			}
			meta = meta.With(f, value)
			proposed = filename.Build(meta)

		default:
			return Outcome{}, fmt.Errorf("unknown choice %d", int(intent))
		}
	}
}

func fieldLabel(f types.MetadataField) string {
	switch f {
	case types.FieldAuthor:
		return "First author"
	case types.FieldYear:
		return "Year"
	case types.FieldTitle:
		return "Title"
	}
	return string(f)
}

// AutoAccept is a Prompter that accepts every proposal. It backs the
// --yes flag; an invalid proposal is reported as an error instead of
// looping forever.
type AutoAccept struct {
	invalid string
}

func (a *AutoAccept) Choose(_, _ string) (Intent, error) {
	if a.invalid != "" {
		return 0, fmt.Errorf("proposed filename rejected: %s", a.invalid)
	}
	return Accept, nil
}

func (a *AutoAccept) Input(_, def string) (string, error) { return def, nil }

func (a *AutoAccept) ShowError(msg string) { a.invalid = msg }
