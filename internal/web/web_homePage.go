package web

import (
	"github.com/gin-gonic/gin"
)

// AnonymousUser is shown on the home page when no username is given
const AnonymousUser = "Anonymous"

// homePage renders index.html for "/" with the username query value or AnonymousUser
func (s *WebServer) homePage(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		username = AnonymousUser
	}
	s.Log.Info("home page", "username", username)

	s.renderTemplate(c, "index.html", RenderContext{"username": username})
}
