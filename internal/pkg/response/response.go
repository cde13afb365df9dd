// Package response emits the one JSON envelope every handler speaks:
// {"success":true,"data":...} on the happy path,
// {"success":false,"error":{"code","message"}} otherwise.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a machine-readable code plus a human message. Codes are
// stable contract; messages are free to change.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
