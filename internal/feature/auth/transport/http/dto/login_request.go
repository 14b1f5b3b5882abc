package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRes は認証成功時のレスポンスを表します。
// トークンはレスポンスボディとHttpOnly Cookieの両方で返されます。
type LoginRes struct {
	Token string `json:"token"`
}
