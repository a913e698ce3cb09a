package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
)

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "phi4", req["model"])
		assert.Equal(t, false, req["stream"])
		assert.Contains(t, req["prompt"], "Question:")

		json.NewEncoder(w).Encode(map[string]any{
			"response": "Atsakymas.",
			"done":     true,
		})
	}))
	defer server.Close()

	svc := NewLLMService(Config{BaseURL: server.URL})
	answer, err := svc.Generate(context.Background(), "Context:\n...\n\nQuestion: kas?\nAnswer:", driven.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Atsakymas.", answer)
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewLLMService(Config{BaseURL: server.URL})
	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGenerate_Unreachable(t *testing.T) {
	svc := NewLLMService(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})

	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models":[]}`))
	}))
	defer server.Close()

	svc := NewLLMService(Config{BaseURL: server.URL})
	assert.NoError(t, svc.Ping(context.Background()))
}

func TestDefaults(t *testing.T) {
	svc := NewLLMService(Config{})
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.NoError(t, svc.Close())
}
