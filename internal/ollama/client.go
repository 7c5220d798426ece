// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ollama is a minimal client for a local Ollama daemon: listing
// installed and running models and generating JSON completions.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/paper-renamer/internal/httputil"
	"github.com/pdiddy/paper-renamer/pkg/types"
)

const (
	// DefaultHost is where `ollama serve` listens by default.
	DefaultHost = "http://localhost:11434"
	// DefaultModel is used when no model is configured.
	DefaultModel = "llama3.2:latest"
	// AutoModel asks the client to pick a running or installed model.
	AutoModel = "auto"
	// DefaultTimeout bounds each request; a cold model can take a while to load.
	DefaultTimeout = 2 * time.Minute
)

var (
	// ErrUnreachable is returned when the daemon cannot be contacted.
	ErrUnreachable = httputil.ErrUnreachable
	// ErrNoModel is returned when no model is installed.
	ErrNoModel = errors.New("no Ollama models are installed")
	// ErrMalformedResponse is returned when a completion is not valid JSON
	// or lacks a required field.
	ErrMalformedResponse = errors.New("malformed model response")
)

const helpStart = `Please start Ollama first:

  1. If Ollama is not installed, visit: https://ollama.ai
  2. If Ollama is installed, start it with: ollama serve
  3. Then pull a model, for example: ollama pull llama3.2`

const helpPull = `Please install a model first, for example:

  - ollama pull llama3.2
  - ollama pull mistral

Visit https://ollama.ai/library for more models`

// Client talks to the Ollama HTTP API.
type Client struct {
	host string
	http *http.Client
	log  *slog.Logger
}

// NewClient creates a client for cfg.Host. A nil logger discards logs.
func NewClient(cfg types.OllamaConfig, logger *slog.Logger) *Client {
	host := strings.TrimRight(cfg.Host, "/")
	if host == "" {
		host = DefaultHost
	}
	// OLLAMA_HOST is commonly set without a scheme ("127.0.0.1:11434").
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		host: host,
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}
}

// Host returns the base URL the client talks to.
func (c *Client) Host() string { return c.host }

type modelEntry struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type modelsResponse struct {
	Models []modelEntry `json:"models"`
}

func (r modelsResponse) infos() []types.ModelInfo {
	out := make([]types.ModelInfo, 0, len(r.Models))
	for _, m := range r.Models {
		out = append(out, types.ModelInfo{
			Name:       m.Name,
			Size:       m.Size,
			ModifiedAt: m.ModifiedAt,
			ExpiresAt:  m.ExpiresAt,
		})
	}
	return out
}

// InstalledModels lists models available on disk (GET /api/tags).
func (c *Client) InstalledModels(ctx context.Context) ([]types.ModelInfo, error) {
	var resp modelsResponse
	if err := httputil.GetJSON(ctx, c.http, c.host+"/api/tags", &resp); err != nil {
		return nil, c.wrap("listing installed models", err)
	}
	return resp.infos(), nil
}

// RunningModels lists models loaded in memory (GET /api/ps).
func (c *Client) RunningModels(ctx context.Context) ([]types.ModelInfo, error) {
	var resp modelsResponse
	if err := httputil.GetJSON(ctx, c.http, c.host+"/api/ps", &resp); err != nil {
		return nil, c.wrap("listing running models", err)
	}
	return resp.infos(), nil
}

// DetectModel picks the model to use: the first running model if any,
// otherwise the first installed one.
func (c *Client) DetectModel(ctx context.Context) (string, error) {
	installed, err := c.InstalledModels(ctx)
	if err != nil {
		return "", err
	}

	running, err := c.RunningModels(ctx)
	if err != nil {
		// Older daemons lack /api/ps; fall through to the installed list.
		c.log.Debug("ollama.detect.ps_failed", "error", err)
	} else if len(running) > 0 {
		c.log.Debug("ollama.detect.running", "model", running[0].Name)
		return running[0].Name, nil
	}

	if len(installed) == 0 {
		return "", fmt.Errorf("%w. %s", ErrNoModel, helpPull)
	}
	c.log.Debug("ollama.detect.installed", "model", installed[0].Name)
	return installed[0].Name, nil
}

// ResolveModel returns model unchanged unless it is empty or "auto", in
// which case DetectModel chooses one.
func (c *Client) ResolveModel(ctx context.Context, model string) (string, error) {
	if model != "" && model != AutoModel {
		return model, nil
	}
	return c.DetectModel(ctx)
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate sends prompt to model and returns the completion text. The
// daemon is asked for a single non-streamed JSON object.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	req := generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Format: "json",
	}
	var resp generateResponse
	if err := httputil.PostJSON(ctx, c.http, c.host+"/api/generate", req, &resp); err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return "", fmt.Errorf("model %q not found (try: ollama pull %s): %w", model, model, err)
		}
		return "", c.wrap("generating completion", err)
	}
	return resp.Response, nil
}

// wrap attaches help text to connectivity failures.
func (c *Client) wrap(op string, err error) error {
	if errors.Is(err, ErrUnreachable) {
		return fmt.Errorf("cannot connect to Ollama at %s: %w\n\n%s", c.host, err, helpStart)
	}
	return fmt.Errorf("%s: %w", op, err)
}
