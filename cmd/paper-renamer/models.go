package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-renamer/internal/ollama"
	"github.com/pdiddy/paper-renamer/pkg/types"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List installed and running Ollama models",
	Long: `Models queries the Ollama daemon for installed models and marks the ones
currently loaded in memory. With --model auto, paper-renamer uses the first
running model, or the first installed one if none is running.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := ollama.NewClient(cfg.Ollama, logger)

		installed, err := client.InstalledModels(cmd.Context())
		if err != nil {
			return err
		}
		running, err := client.RunningModels(cmd.Context())
		if err != nil {
			logger.Debug("models.ps_failed", "error", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string][]types.ModelInfo{"installed": installed, "running": running})
		}
		if len(installed) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No models installed. Try: ollama pull llama3.2")
			return nil
		}
		writeModelsTable(cmd.OutOrStdout(), installed, running, time.Now())
		return nil
	},
}

func init() {
	modelsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(modelsCmd)
}

// writeModelsTable renders installed models with their size, age and
// whether they are loaded.
func writeModelsTable(w io.Writer, installed, running []types.ModelInfo, now time.Time) {
	loaded := make(map[string]bool, len(running))
	for _, m := range running {
		loaded[m.Name] = true
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Size", "Modified", "Running"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, m := range installed {
		modified := "-"
		if !m.ModifiedAt.IsZero() {
			modified = humanize.RelTime(m.ModifiedAt, now, "ago", "from now")
		}
		run := ""
		if loaded[m.Name] {
			run = "yes"
		}
		table.Append([]string{m.Name, humanize.Bytes(uint64(m.Size)), modified, run})
	}
	table.Render()
}
