package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcode-studio/studio-backend/config"
	"github.com/webcode-studio/studio-backend/internal/suggestions/domain"
)

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", got)
		}

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"1. do the thing"}}]}`))
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "test-model"})

	got, err := client.Complete(context.Background(), Prompt{System: "sys", User: "usr"})
	require.NoError(t, err)
	assert.Equal(t, "1. do the thing", got)
}

func TestClient_Complete_MissingCredential(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL, Model: "test-model"})

	_, err := client.Complete(context.Background(), Prompt{User: "usr"})
	assert.ErrorIs(t, err, domain.ErrNoCredential)
	assert.Zero(t, atomic.LoadInt64(&calls), "no network call should be made without a credential")
}

func TestClient_Complete_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})

	_, err := client.Complete(context.Background(), Prompt{User: "usr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(config.AIConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})

	_, err := client.Complete(context.Background(), Prompt{User: "usr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestClient_Complete_Unreachable(t *testing.T) {
	client := NewClient(config.AIConfig{BaseURL: "http://127.0.0.1:1", APIKey: "k", Model: "m"})

	_, err := client.Complete(context.Background(), Prompt{User: "usr"})
	assert.Error(t, err)
}
