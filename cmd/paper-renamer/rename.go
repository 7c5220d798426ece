package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-renamer/internal/confirm"
	"github.com/pdiddy/paper-renamer/internal/ollama"
	"github.com/pdiddy/paper-renamer/internal/pdftext"
	"github.com/pdiddy/paper-renamer/internal/ui"
	"github.com/pdiddy/paper-renamer/internal/workflow"
)

func runRename(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, err := pdftext.New(cfg.PDF)
	if err != nil {
		return err
	}

	w := &workflow.Workflow{
		Text:  text,
		Meta:  ollama.NewClient(cfg.Ollama, logger),
		UI:    ui.NewTerminal(os.Stdin, os.Stdout, os.Stderr),
		Model: cfg.Ollama.Model,
		Log:   logger,
	}
	if cfg.AssumeYes {
		w.Prompter = &confirm.AutoAccept{}
	}

	_, err = w.Run(cmd.Context(), args[0])
	return err
}
