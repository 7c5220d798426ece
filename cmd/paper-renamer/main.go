// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-renamer CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-renamer/internal/ollama"
	"github.com/pdiddy/paper-renamer/internal/pdftext"
	"github.com/pdiddy/paper-renamer/internal/ui"
	"github.com/pdiddy/paper-renamer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from --verbose.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// rootCmd renames a single PDF.
var rootCmd = &cobra.Command{
	Use:   "paper-renamer [flags] <file.pdf>",
	Short: "Automatically rename academic paper PDFs using LLM-extracted metadata",
	Long: `paper-renamer reads the first pages of an academic paper, asks a local
Ollama model for the first author, year and title, and proposes a filename of
the form <author>-<year>-<title>.pdf. Nothing is renamed until you accept the
proposal; you can edit the whole name or any single field first.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		level := slog.LevelWarn
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("config.loaded", "file", f)
		}
		return nil
	},
	RunE: runRename,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./paper-renamer.yaml or ~/.config/paper-renamer/paper-renamer.yaml)")
	pf.StringP("model", "m", ollama.DefaultModel, `Ollama model to use for metadata extraction ("auto" picks a running or installed model)`)
	pf.String("host", ollama.DefaultHost, "Ollama API base URL")
	pf.Duration("timeout", ollama.DefaultTimeout, "timeout for each Ollama request")
	pf.String("extractor", string(types.BackendNative), "PDF text extractor: native or pdftotext")
	pf.Int("max-pages", pdftext.DefaultMaxPages, "number of leading pages to read")
	pf.Int("max-chars", pdftext.DefaultMaxChars, "maximum characters of text sent to the model")
	pf.BoolP("verbose", "v", false, "enable debug logging on stderr")
	rootCmd.Flags().BoolP("yes", "y", false, "accept the proposed filename without prompting")

	for key, flag := range map[string]string{
		"ollama.model":   "model",
		"ollama.host":    "host",
		"ollama.timeout": "timeout",
		"pdf.backend":    "extractor",
		"pdf.max_pages":  "max-pages",
		"pdf.max_chars":  "max-chars",
		"verbose":        "verbose",
	} {
		must(viper.BindPFlag(key, pf.Lookup(flag)))
	}
	must(viper.BindPFlag("assume_yes", rootCmd.Flags().Lookup("yes")))
	// Honour Ollama's own variable when ours is unset.
	must(viper.BindEnv("ollama.host", "PAPER_RENAMER_OLLAMA_HOST", "OLLAMA_HOST"))
}

// must panics on flag binding errors, which only occur when a flag is
// renamed without updating its binding.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// configErr holds a config file error from initConfig, reported by
// PersistentPreRunE since cobra initializers cannot fail.
var configErr error

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	configErr = readConfig(viper.GetViper(), cfgFile)
}

// readConfig sets up config sources on v and reads the config file. A
// missing file is only an error when cfgFile names it explicitly; a file
// that exists but cannot be parsed is always an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("paper-renamer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "paper-renamer"))
		}
	}

	v.SetEnvPrefix("PAPER_RENAMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// loadConfig resolves flags, environment and config file into a Config.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.NewPrinter(os.Stdout, os.Stderr).ShowError(err.Error())
		stop()
		os.Exit(1)
	}
}
