package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

// JSONError writes {"error": {"code": ..., "message": ...}} plus any extra
// fields merged into the error object.
func JSONError(c *gin.Context, code int, errCode, message string, extra ...gin.H) {
	body := gin.H{"code": errCode, "message": message}
	for _, e := range extra {
		for k, v := range e {
			body[k] = v
		}
	}
	c.JSON(code, gin.H{"error": body})
}
