package types

import "time"

// OllamaConfig holds settings for the local model-serving daemon.
type OllamaConfig struct {
	// Host is the base URL of the Ollama API (e.g. "http://localhost:11434").
	Host string `json:"host" yaml:"host" mapstructure:"host"`

	// Model is the model name passed to /api/generate. The value "auto"
	// selects the first running model, then the first installed one.
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// Timeout bounds each HTTP request to the daemon.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// TextBackend identifies the PDF text extraction tool.
type TextBackend string

const (
	BackendNative    TextBackend = "native"
	BackendPdftotext TextBackend = "pdftotext"
)

// PDFConfig holds settings for PDF text extraction.
type PDFConfig struct {
	// Backend selects the extractor: native or pdftotext.
	Backend TextBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// MaxPages is the number of leading pages read (default 3).
	MaxPages int `json:"max_pages" yaml:"max_pages" mapstructure:"max_pages"`

	// MaxChars caps the text sent to the model (default 3000).
	MaxChars int `json:"max_chars" yaml:"max_chars" mapstructure:"max_chars"`
}

// Config groups all settings for one paper-renamer invocation.
type Config struct {
	Ollama OllamaConfig `json:"ollama" yaml:"ollama" mapstructure:"ollama"`
	PDF    PDFConfig    `json:"pdf" yaml:"pdf" mapstructure:"pdf"`

	// AssumeYes accepts the proposed filename without prompting.
	AssumeYes bool `json:"assume_yes" yaml:"assume_yes" mapstructure:"assume_yes"`
}
