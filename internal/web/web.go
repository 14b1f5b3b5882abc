// Package web serves the embedded browser UI: the auth pages and the chat
// page with its transcript store and sandboxed preview.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var content embed.FS

// LoginPage serves the login form.
func LoginPage(c *gin.Context) {
	servePage(c, "login.html")
}

// SignupPage serves the registration form.
func SignupPage(c *gin.Context) {
	servePage(c, "signup.html")
}

// ChatPage serves the chat UI. The route is mounted behind the page guard;
// this handler never runs for unauthenticated requests.
func ChatPage(c *gin.Context) {
	servePage(c, "chat.html")
}

// Assets returns the embedded static files (scripts, styles) as an
// http.FileSystem for gin's StaticFS.
func Assets() http.FileSystem {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// The subtree is embedded at compile time; this cannot fail at runtime.
		panic(err)
	}
	return http.FS(sub)
}

func servePage(c *gin.Context, name string) {
	b, err := content.ReadFile("static/" + name)
	if err != nil {
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", b)
}
