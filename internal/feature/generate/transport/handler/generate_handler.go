// Package handler はgenerateフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pagegen_backend/internal/feature/generate/domain/entity"
	"pagegen_backend/internal/feature/generate/transport/http/dto"
	"pagegen_backend/internal/feature/generate/usecase"
	jwtmw "pagegen_backend/internal/platform/jwt"
)

// GenerateUsecase はページ生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type GenerateUsecase interface {
	Generate(ctx context.Context, prompt string) (*entity.Page, error)
}

// GenerateHandler はページ生成のHTTPリクエストを処理します。
type GenerateHandler struct {
	uc GenerateUsecase
}

// NewGenerateHandler はGenerateHandlerの新しいインスタンスを生成します。
func NewGenerateHandler(uc GenerateUsecase) *GenerateHandler {
	return &GenerateHandler{uc: uc}
}

// Generate はプロンプトからランディングページを生成します。
//
// エンドポイント: POST /chat（認証必須）
// - バリデーションエラー・空プロンプト時は400を返却
// - 補完API障害時は502、タイムアウト時は504を返却
// - 成功時はクリーニング済みHTMLを200で返却
//
// 内部エラーの詳細（プロバイダのエラーメッセージ等）はクライアントに公開しません。
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req dto.GenerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("generate validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	// ログ相関用のリクエストID
	reqID := uuid.NewString()
	userID, _ := c.Get(jwtmw.ContextUserID)

	slog.Info("generation requested", "request_id", reqID, "user_id", userID,
		"prompt_len", len(req.Prompt))

	page, err := h.uc.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyPrompt):
			c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		case errors.Is(err, usecase.ErrPromptTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is too long"})
		case errors.Is(err, usecase.ErrCompletionTimeout):
			slog.Error("generation timed out", "request_id", reqID, "user_id", userID, "error", err)
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "generation timed out, please try again"})
		default:
			slog.Error("generation failed", "request_id", reqID, "user_id", userID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "generation is currently unavailable, please try again"})
		}
		return
	}

	slog.Info("generation succeeded", "request_id", reqID, "user_id", userID,
		"response_len", len(page.HTML))
	c.JSON(http.StatusOK, dto.GenerateRes{Response: page.HTML})
}
