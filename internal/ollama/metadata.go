// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

// metadataPromptTmpl asks the model for the first author's last name, the
// publication year and the title as a single JSON object.
var metadataPromptTmpl = template.Must(template.New("metadata").Parse(`You are analyzing the first page of an academic paper. Extract the following information and respond ONLY with valid JSON in this exact format:
{
  "first_author": "LastName",
  "year": "YYYY",
  "title": "Full Paper Title"
}

Rules:
- For first_author: extract ONLY the last name of the first author
- For year: extract the publication year as a 4-digit number
- For title: extract the complete paper title
- Respond with ONLY the JSON, no other text

Paper text:
{{.Text}}

JSON response:`))

// metadataSchema accepts the year as a string or a bare number; small
// models often drop the quotes.
var metadataSchema = jsonschema.MustCompileString("paper-metadata.json", `{
  "type": "object",
  "required": ["first_author", "year", "title"],
  "properties": {
    "first_author": {"type": "string", "minLength": 1},
    "year": {"type": ["string", "integer"]},
    "title": {"type": "string", "minLength": 1}
  }
}`)

func renderPrompt(text string) (string, error) {
	var buf bytes.Buffer
	if err := metadataPromptTmpl.Execute(&buf, struct{ Text string }{text}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExtractMetadata asks model for the paper's first author, year and title
// given the leading text of the paper.
func (c *Client) ExtractMetadata(ctx context.Context, model, text string) (types.PaperMetadata, error) {
	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("ollama.extract.start", "req_id", rid, "model", model, "text_len", len(text))

	prompt, err := renderPrompt(text)
	if err != nil {
		return types.PaperMetadata{}, fmt.Errorf("rendering prompt: %w", err)
	}

	completion, err := c.Generate(ctx, model, prompt)
	if err != nil {
		c.log.Error("ollama.extract.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return types.PaperMetadata{}, err
	}

	meta, err := ParseMetadata(completion)
	if err != nil {
		c.log.Error("ollama.extract.parse_failed", "req_id", rid, "error", err,
			"content", completion, "elapsed_ms", time.Since(start).Milliseconds())
		return types.PaperMetadata{}, err
	}

	c.log.Info("ollama.extract.ok", "req_id", rid,
		"author", meta.FirstAuthor, "year", meta.Year, "title", meta.Title,
		"elapsed_ms", time.Since(start).Milliseconds())
	return meta, nil
}

// ParseMetadata validates a model completion and converts it to
// PaperMetadata. Errors wrap ErrMalformedResponse.
func ParseMetadata(completion string) (types.PaperMetadata, error) {
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(completion)), &v); err != nil {
		return types.PaperMetadata{}, fmt.Errorf("%w: the model did not return valid JSON: %v", ErrMalformedResponse, err)
	}
	if err := metadataSchema.Validate(v); err != nil {
		return types.PaperMetadata{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	obj := v.(map[string]any)
	meta := types.PaperMetadata{
		FirstAuthor: strings.TrimSpace(obj["first_author"].(string)),
		Year:        strings.TrimSpace(yearString(obj["year"])),
		Title:       strings.TrimSpace(obj["title"].(string)),
	}
	if !meta.Complete() {
		return types.PaperMetadata{}, fmt.Errorf("%w: the model failed to extract all required metadata fields", ErrMalformedResponse)
	}
	return meta, nil
}

func yearString(v any) string {
	switch y := v.(type) {
	case string:
		return y
	case float64:
		return strconv.FormatFloat(y, 'f', -1, 64)
	case json.Number:
		return y.String()
	}
	return ""
}
