package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"pagegen_backend/internal/app/di"
	"pagegen_backend/internal/app/router"
	authadapters "pagegen_backend/internal/feature/auth/adapters"
	authhandler "pagegen_backend/internal/feature/auth/transport/handler"
	authusecase "pagegen_backend/internal/feature/auth/usecase"
	generatehandler "pagegen_backend/internal/feature/generate/transport/handler"
	generateusecase "pagegen_backend/internal/feature/generate/usecase"
	"pagegen_backend/internal/platform/config"
	infradb "pagegen_backend/internal/platform/db"
	jwtmw "pagegen_backend/internal/platform/jwt"
)

func main() {
	// .envがあれば読み込む（ローカル開発用。本番は環境変数で渡す）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// 設定の読み込み。必須項目が欠けていたら起動させない
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// db
	db := infradb.OpenDB(cfg)

	// Repository
	userRepo := authadapters.NewUserGorm(db)

	// 補完バックエンド（openai / gemini）
	completer, err := di.NewCompleter(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to initialize completion backend: %v", err)
	}

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenExpiry)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	generateUC := generateusecase.NewGenerateUsecase(completer, cfg.CompletionTimeout)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, cfg.TokenExpiry)
	generateH := generatehandler.NewGenerateHandler(generateUC)

	// ルータ生成（CORS込み）
	r := router.NewRouter(authH, generateH, cfg.JWTSecret)

	slog.Info("server starting", "addr", cfg.ServerAddress, "provider", cfg.CompletionProvider)
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal(err)
	}
}
