package auth

import "github.com/gin-gonic/gin"

const (
	userIDKey = "userID"
	callerKey = "caller"
)

// GetUserID returns the authenticated user's ID or 0.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// SetCaller stores the resolved caller for later handlers.
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(callerKey, caller)
}

// GetCaller returns the caller resolved by the caller middleware.
func GetCaller(c *gin.Context) (Caller, bool) {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(Caller); ok {
			return caller, true
		}
	}
	return Caller{}, false
}
