// Package gemini はGoogle Gemini APIを使用したCompleter実装を提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"pagegen_backend/internal/feature/generate/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	// samplingTemperature は固定のサンプリング温度です。
	samplingTemperature = 0.7
)

// Generator はGoogle Gemini APIを使用してページ補完を生成します。
type Generator struct {
	client *genai.Client
	model  string
}

// GeneratorがCompleterを実装していることをコンパイル時に検証します。
var _ usecase.Completer = (*Generator)(nil)

// NewGenerator はGeneratorの新しいインスタンスを生成します。
// 認証情報（GEMINI_API_KEY、またはVertex AI利用時のADC）は
// genaiクライアントが環境から読み込みます。modelが空の場合はDefaultModelを使用します。
func NewGenerator(ctx context.Context, model string) (*Generator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}, nil
}

// Complete はシステム指示とプロンプトから1回の補完を生成します。
func (g *Generator) Complete(ctx context.Context, system, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](samplingTemperature),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
