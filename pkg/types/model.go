// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ModelInfo describes a model known to the model-serving daemon, either
// installed on disk or currently loaded in memory.
type ModelInfo struct {
	Name       string    `json:"name" yaml:"name"`
	Size       int64     `json:"size" yaml:"size"`
	ModifiedAt time.Time `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
	ExpiresAt  time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}
