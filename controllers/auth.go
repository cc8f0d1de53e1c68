package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the acting user from the X-User-ID header. Session
// management lives in the auth layer in front of this service; this API
// trusts the identity it is handed. Writes a 401 and returns false when
// the header is missing or malformed.
func currentUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.GetHeader("X-User-ID"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return 0, false
	}
	return uint(id), true
}

// gameIDParam parses the :id route parameter.
func gameIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return 0, false
	}
	return uint(id), true
}
