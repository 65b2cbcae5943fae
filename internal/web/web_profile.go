package web

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// profilePage renders profile.html for the username in the path segment
func (s *WebServer) profilePage(c *gin.Context) {
	username := c.Param("username")
	// With a raw path the router matched on the escaped form, so the value is still escaped
	if c.Request.URL.RawPath != "" {
		if v, err := url.PathUnescape(username); err == nil {
			username = v
		}
	}
	s.renderTemplate(c, "profile.html", RenderContext{"username": username})
}

// ProfilePath returns the profile URL for username, escaped so it survives as one path segment
func ProfilePath(username string) string {
	return "/profile/" + url.PathEscape(username)
}
