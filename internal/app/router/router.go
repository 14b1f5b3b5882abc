package router

import (
	authhandler "pagegen_backend/internal/feature/auth/transport/handler"
	generatehandler "pagegen_backend/internal/feature/generate/transport/handler"
	jwtmw "pagegen_backend/internal/platform/jwt"
	"pagegen_backend/internal/platform/http/handler"
	"pagegen_backend/internal/web"

	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, generate *generatehandler.GenerateHandler,
	jwtSecret string) *gin.Engine {
	r := gin.Default()

	// ブラウザUIは同一オリジンで配信するが、開発用フロントからのアクセスも許可する。
	// ミドルウェアはルート登録前に適用する必要がある
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/register", authHandler.Register)
	// ログイン（JWT 発行、Cookieにも設定）
	r.POST("/login", authHandler.Login)
	// ログアウト（Cookie破棄のみ。サーバー側に破棄する状態はない）
	r.GET("/logout", authHandler.Logout)

	// 画面と静的ファイル
	r.GET("/login", web.LoginPage)
	r.GET("/signup", web.SignupPage)
	r.StaticFS("/assets", web.Assets())
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/chat")
	})

	// 認証必須のAPI。失敗時は401 JSONを返す
	api := r.Group("/")
	api.Use(jwtmw.AuthRequired(jwtSecret))
	{
		api.POST("/chat", generate.Generate)
	}

	// 認証必須の画面。失敗時は/loginへリダイレクトする
	pages := r.Group("/")
	pages.Use(jwtmw.PageAuthRequired(jwtSecret))
	{
		pages.GET("/chat", web.ChatPage)
	}

	return r
}
