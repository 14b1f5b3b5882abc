// Package openai はOpenAI Chat Completions APIを使用したCompleter実装を提供します。
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"pagegen_backend/internal/feature/generate/usecase"
)

const (
	// DefaultModel はOpenAI APIのデフォルトモデルです。
	DefaultModel = "gpt-4.1-mini"

	// samplingTemperature は固定のサンプリング温度です。
	// 温度 > 0 のため、同一プロンプトでも結果は決定的ではありません。
	samplingTemperature = 0.7
)

// Client はOpenAI APIを使用してページ補完を生成します。
type Client struct {
	client *openai.Client
	model  string
}

// ClientがCompleterを実装していることをコンパイル時に検証します。
var _ usecase.Completer = (*Client)(nil)

// NewClient はClientの新しいインスタンスを生成します。
// httpClientにはタイムアウトを設定したクライアントを渡してください
// （platform/httpのNewHTTPClientを想定）。modelが空の場合はDefaultModelを使用します。
func NewClient(apiKey, model string, httpClient *http.Client) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: openai.NewClientWithConfig(cfg), model: model}
}

// Complete はシステム指示とプロンプトから1回のチャット補完を実行し、
// 最初のchoiceのテキストを返します。会話履歴は送信しません。
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: samplingTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
