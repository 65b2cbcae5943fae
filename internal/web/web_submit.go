package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// submitForm is the urlencoded body posted by the form on index.html
type submitForm struct {
	Username string `form:"username"`
}

// submitPage redirects to the profile of the posted username, or home when there is none.
// Only the request body is consulted, a username in the query string is ignored.
func (s *WebServer) submitPage(c *gin.Context) {
	var form submitForm
	if err := c.ShouldBindWith(&form, binding.FormPost); err != nil {
		s.Log.Debug("submit: unreadable form body", "err", err)
	}

	if form.Username == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, ProfilePath(form.Username))
}
