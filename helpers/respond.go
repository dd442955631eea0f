package helpers

import "github.com/gin-gonic/gin"

// JSONError writes the uniform error shape every handler responds with.
func JSONError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"status": status, "msg": msg})
}
