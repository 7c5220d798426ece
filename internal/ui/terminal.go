// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/paper-renamer/internal/confirm"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Terminal is the interactive implementation of the prompts used by the
// confirmation loop and the rename workflow.
type Terminal struct {
	*Printer
	opts        []survey.AskOpt
	interactive bool
}

// NewTerminal creates a Terminal on the given standard streams.
func NewTerminal(in, out, errOut *os.File) *Terminal {
	return &Terminal{
		Printer:     NewPrinter(out, errOut),
		opts:        []survey.AskOpt{survey.WithStdio(in, out, errOut)},
		interactive: isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

// Choose shows the proposal and asks what to do with it.
func (t *Terminal) Choose(original, proposed string) (confirm.Intent, error) {
	t.DisplayProposal(proposed)

	labels := make([]string, len(confirm.Intents))
	for i, intent := range confirm.Intents {
		labels[i] = intent.String()
	}

	var idx int
	prompt := &survey.Select{
		Message: fmt.Sprintf("Would you like to rename '%s' to '%s'?", original, proposed),
		Options: labels,
		Default: 0,
	}
	if err := survey.AskOne(prompt, &idx, t.opts...); err != nil {
		return 0, t.promptErr(err)
	}
	return confirm.Intents[idx], nil
}

// Input asks for one line of text, pre-filled with def. Empty answers are
// rejected.
func (t *Terminal) Input(label, def string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: label, Default: def}
	if err := survey.AskOne(prompt, &answer, append(t.opts, survey.WithValidator(survey.Required))...); err != nil {
		return "", t.promptErr(err)
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(message string, def bool) (bool, error) {
	answer := def
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &answer, t.opts...); err != nil {
		return false, t.promptErr(err)
	}
	return answer, nil
}

// Spin shows a progress indicator with msg until the returned func is
// called. Without a terminal it prints msg once instead.
func (t *Terminal) Spin(msg string) (stop func()) {
	if !t.interactive {
		t.Infof("%s", msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(t.out))
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}

func (t *Terminal) promptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
