package web

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

// renderTemplate renders into a buffer first so a failing template never leaves a half written 200
func (s *WebServer) renderTemplate(c *gin.Context, name string, data RenderContext) {
	var buf bytes.Buffer
	if err := s.Templates.Render(&buf, name, data); err != nil {
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// renderError logs err and answers with the bare status text
func (s *WebServer) renderError(c *gin.Context, statusCode int, err error) {
	_ = c.Error(err)
	s.Log.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", statusCode,
		"err", err)
	c.Data(statusCode, "text/plain; charset=utf-8", []byte(http.StatusText(statusCode)))
	c.Abort()
}
