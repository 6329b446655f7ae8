package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {"success": bool, "data": ...} or {"success": false, "error": ...}.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// currentUserID pulls the authenticated user's ID out of the cookie session.
func currentUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	userID, ok := session.Get("userID").(uint)
	return userID, ok
}
