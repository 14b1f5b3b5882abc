// Package dto はgenerateフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// GenerateReq は/chatエンドポイントのリクエストボディを表します。
type GenerateReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateRes は生成成功時のレスポンスを表します。
// Responseはフェンス除去・トリム済みのHTMLドキュメントです。
type GenerateRes struct {
	Response string `json:"response"`
}
