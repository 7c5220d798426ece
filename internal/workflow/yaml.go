// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// WriteYAML writes p to w as a YAML document.
func WriteYAML(w io.Writer, p Proposal) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling proposal: %w", err)
	}
	_, err = w.Write(data)
	return err
}
