// Package usecase はgenerateフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pagegen_backend/internal/feature/generate/domain/entity"
)

const (
	// SystemInstruction は全てのリクエストに付与される固定のシステム指示です。
	// 会話履歴は送信されず、各プロンプトは独立した1ターンとして扱われます。
	SystemInstruction = "You generate landing pages. Respond with a single, self-contained HTML document " +
		"with all styles in an embedded <style> block. Do not reference external resources. " +
		"Do not include <script> elements unless the user explicitly asks for them. " +
		"The page must be responsive and minimal. Respond with the HTML document only, no explanation."

	// MaxPromptLength はプロンプトの最大文字数（rune数）です。
	MaxPromptLength = 4000

	// DefaultTimeout は外部補完APIへの呼び出しのデフォルト上限時間です。
	DefaultTimeout = 30 * time.Second
)

// Completer は外部の補完APIを抽象化するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Completer interface {
	// Complete はシステム指示とユーザープロンプトから1回の補完を生成します。
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// generateUsecase はランディングページ生成のビジネスロジックを提供します。
type generateUsecase struct {
	completer Completer
	timeout   time.Duration
}

// NewGenerateUsecase はgenerateUsecaseの新しいインスタンスを生成します。
// timeoutが0以下の場合はDefaultTimeoutが使用されます。
func NewGenerateUsecase(completer Completer, timeout time.Duration) *generateUsecase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &generateUsecase{completer: completer, timeout: timeout}
}

// Generate はプロンプトからランディングページを1回の補完呼び出しで生成します。
//
// 空のプロンプトはネットワーク呼び出しの前に拒否されます。
// 呼び出しはリトライ・キャッシュされません（同一プロンプトでも結果は毎回異なり得ます）。
func (u *generateUsecase) Generate(ctx context.Context, prompt string) (*entity.Page, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return nil, ErrEmptyPrompt
	}
	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return nil, ErrPromptTooLong
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	raw, err := u.completer.Complete(ctx, SystemInstruction, trimmed)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrCompletionTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCompletionUnavailable, err)
	}

	html := stripCodeFences(raw)
	if html == "" {
		// 空のレスポンスを黙って返さない
		return nil, fmt.Errorf("%w: empty completion", ErrCompletionUnavailable)
	}

	return &entity.Page{Prompt: trimmed, HTML: html}, nil
}

// stripCodeFences はモデルがHTMLを```html / ```フェンスで囲んで返した場合に
// フェンス行を取り除き、前後の空白をトリムします。
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// 先頭フェンス行（```html等の言語タグを含む）を落とす
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return ""
		}
		s = s[i+1:]
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}
