// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"name":"llama3.2:latest"}`))
	}))
	defer ts.Close()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL, &out))
	assert.Equal(t, "llama3.2:latest", out.Name)
}

func TestPostJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		json.NewEncoder(w).Encode(map[string]any{"echo": in["prompt"]})
	}))
	defer ts.Close()

	var out struct {
		Echo string `json:"echo"`
	}
	err := PostJSON(context.Background(), ts.Client(), ts.URL, map[string]string{"prompt": "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hi", out.Echo)
}

func TestDoJSON_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer ts.Close()

	err := GetJSON(context.Background(), ts.Client(), ts.URL, nil)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Body, "model not found")
	assert.False(t, errors.Is(err, ErrUnreachable))
}

func TestDoJSON_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	err := GetJSON(context.Background(), http.DefaultClient, url, nil)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestDoJSON_DecodeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	var out map[string]any
	err := GetJSON(context.Background(), ts.Client(), ts.URL, &out)
	assert.ErrorContains(t, err, "decoding response")
}

func TestDoJSON_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := GetJSON(ctx, ts.Client(), ts.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
