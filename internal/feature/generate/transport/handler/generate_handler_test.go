package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pagegen_backend/internal/feature/generate/domain/entity"
	"pagegen_backend/internal/feature/generate/usecase"
)

// mockGenerateUsecase is a mock implementation of the GenerateUsecase interface.
type mockGenerateUsecase struct {
	GenerateFunc func(ctx context.Context, prompt string) (*entity.Page, error)
	calls        int
}

func (m *mockGenerateUsecase) Generate(ctx context.Context, prompt string) (*entity.Page, error) {
	m.calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return &entity.Page{Prompt: prompt, HTML: "<html></html>"}, nil
}

func TestGenerateHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      string
		mockGenerateFunc func(ctx context.Context, prompt string) (*entity.Page, error)
		expectedStatus   int
		expectedBody     gin.H
	}{
		{
			name:        "success: page generated",
			requestBody: `{"prompt":"a portfolio page"}`,
			mockGenerateFunc: func(ctx context.Context, prompt string) (*entity.Page, error) {
				return &entity.Page{Prompt: prompt, HTML: "<!DOCTYPE html><html></html>"}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"response": "<!DOCTYPE html><html></html>"},
		},
		{
			name:             "failure: missing prompt field",
			requestBody:      `{}`,
			mockGenerateFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedBody:     gin.H{"error": "prompt is required"},
		},
		{
			name:             "failure: malformed json",
			requestBody:      `{"prompt":`,
			mockGenerateFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedBody:     gin.H{"error": "prompt is required"},
		},
		{
			name:        "failure: whitespace-only prompt",
			requestBody: `{"prompt":"   "}`,
			mockGenerateFunc: func(ctx context.Context, prompt string) (*entity.Page, error) {
				return nil, usecase.ErrEmptyPrompt
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "prompt is required"},
		},
		{
			name:        "failure: completion unavailable",
			requestBody: `{"prompt":"a portfolio page"}`,
			mockGenerateFunc: func(ctx context.Context, prompt string) (*entity.Page, error) {
				return nil, usecase.ErrCompletionUnavailable
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   gin.H{"error": "generation is currently unavailable, please try again"},
		},
		{
			name:        "failure: completion timeout",
			requestBody: `{"prompt":"a portfolio page"}`,
			mockGenerateFunc: func(ctx context.Context, prompt string) (*entity.Page, error) {
				return nil, usecase.ErrCompletionTimeout
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   gin.H{"error": "generation timed out, please try again"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockGenerateUsecase{GenerateFunc: tt.mockGenerateFunc}
			handler := NewGenerateHandler(mockUC)

			router := gin.New()
			router.POST("/chat", handler.Generate)

			req, _ := http.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

// TestGenerateHandler_Generate_NoUsecaseCallOnBindError はバインド失敗時にユースケースが呼ばれないことを検証します。
func TestGenerateHandler_Generate_NoUsecaseCallOnBindError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockGenerateUsecase{}
	handler := NewGenerateHandler(mockUC)

	router := gin.New()
	router.POST("/chat", handler.Generate)

	req, _ := http.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mockUC.calls, "usecase must not be called when binding fails")
}

// TestGenerateHandler_Generate_ErrorDoesNotLeakDetails はプロバイダ由来のエラー詳細がレスポンスに含まれないことを検証します。
func TestGenerateHandler_Generate_ErrorDoesNotLeakDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockUC := &mockGenerateUsecase{
		GenerateFunc: func(ctx context.Context, prompt string) (*entity.Page, error) {
			return nil, usecase.ErrCompletionUnavailable
		},
	}
	handler := NewGenerateHandler(mockUC)

	router := gin.New()
	router.POST("/chat", handler.Generate)

	req, _ := http.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(`{"prompt":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "openai")
	assert.NotContains(t, w.Body.String(), "dial tcp")
}
