package proxy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persona-chat/internal/adapter/proxy"
	"persona-chat/internal/domain"
	"persona-chat/internal/usecase/pipeline"
)

var _ pipeline.Completer = (*proxy.Client)(nil)

func TestCompletePostsHistoryAndReturnsMessage(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Messages []domain.ChatMessage `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Haan ji!"}`))
	}))
	defer srv.Close()

	client := proxy.NewClient(srv.URL)
	history := []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}}

	reply, err := client.Complete(context.Background(), "/api/chat/hitesh", history)
	require.NoError(t, err)
	assert.Equal(t, "Haan ji!", reply)
	assert.Equal(t, "/api/chat/hitesh", gotPath)
	assert.Equal(t, history, gotBody.Messages)
}

func TestCompleteEmptyMessageFieldPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	reply, err := proxy.NewClient(srv.URL).Complete(context.Background(), "/api/chat/hitesh", nil)
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestCompleteErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"API key issue. Please check your OpenAI API key configuration."}`))
	}))
	defer srv.Close()

	_, err := proxy.NewClient(srv.URL).Complete(context.Background(), "/api/chat/hitesh", nil)
	require.Error(t, err)
	// the error text is what the pipeline matches on
	assert.Contains(t, err.Error(), "API key")
}

func TestCompleteNonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := proxy.NewClient(srv.URL).Complete(context.Background(), "/api/chat/hitesh", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}
