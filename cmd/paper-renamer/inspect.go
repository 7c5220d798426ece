package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-renamer/internal/ollama"
	"github.com/pdiddy/paper-renamer/internal/pdftext"
	"github.com/pdiddy/paper-renamer/internal/ui"
	"github.com/pdiddy/paper-renamer/internal/workflow"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Print extracted metadata and the proposed filename as YAML",
	Long: `Inspect runs text and metadata extraction on a PDF and prints the result
and the proposed filename as YAML on stdout. The file is not renamed and no
prompts are shown. Progress messages go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
			UI:    ui.NewTerminal(os.Stdin, os.Stderr, os.Stderr),
			Model: cfg.Ollama.Model,
			Log:   logger,
		}
		p, err := w.Inspect(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return workflow.WriteYAML(cmd.OutOrStdout(), p)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
