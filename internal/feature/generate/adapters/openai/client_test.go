package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a Client pointed at the given test server.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = baseURL + "/v1"
	cfg.HTTPClient = &http.Client{Timeout: 5 * time.Second}
	return &Client{client: openai.NewClientWithConfig(cfg), model: DefaultModel}
}

// TestClient_Complete_Success は正常なAPIレスポンスから最初のchoiceのテキストが返されることを検証します。
func TestClient_Complete_Success(t *testing.T) {
	var gotReq openai.ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  DefaultModel,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": "```html\n<!DOCTYPE html><html></html>\n```",
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	out, err := client.Complete(context.Background(), "system instruction", "a portfolio page")

	require.NoError(t, err)
	assert.Equal(t, "```html\n<!DOCTYPE html><html></html>\n```", out,
		"adapter returns the raw choice text; fence stripping is the usecase's job")

	// Request shape: fixed model, system + single user turn, no history.
	assert.Equal(t, DefaultModel, gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
	assert.Equal(t, "system instruction", gotReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, gotReq.Messages[1].Role)
	assert.Equal(t, "a portfolio page", gotReq.Messages[1].Content)
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
}

// TestClient_Complete_APIError はAPIエラーレスポンスがエラーとして返されることを検証します。
func TestClient_Complete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"server overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	out, err := client.Complete(context.Background(), "system", "prompt")

	assert.Error(t, err)
	assert.Empty(t, out)
}

// TestClient_Complete_NetworkError は接続不能なエンドポイントでエラーが返されることを検証します。
func TestClient_Complete_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 即座に閉じて接続拒否を発生させる

	client := newTestClient(t, srv.URL)
	out, err := client.Complete(context.Background(), "system", "prompt")

	assert.Error(t, err)
	assert.Empty(t, out)
}

// TestClient_Complete_NoChoices はchoicesが空のレスポンスでエラーが返されることを検証します。
func TestClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	out, err := client.Complete(context.Background(), "system", "prompt")

	assert.Error(t, err)
	assert.Empty(t, out)
}

// TestNewClient はデフォルトモデルの適用を検証します。
func TestNewClient(t *testing.T) {
	client := NewClient("test-key", "", nil)
	assert.Equal(t, DefaultModel, client.model)

	client = NewClient("test-key", "gpt-4o", nil)
	assert.Equal(t, "gpt-4o", client.model)
}
