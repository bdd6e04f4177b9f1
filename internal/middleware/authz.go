package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RequireChatScope rejects tokens that are not scoped to the :chat_id param.
func RequireChatScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(claimsKey)
		claims, ok := v.(*Claims)
		if !exists || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no claims in context"})
			return
		}
		if len(claims.ChatIDs) == 0 {
			c.Next()
			return
		}
		chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid chat_id"})
			return
		}
		for _, id := range claims.ChatIDs {
			if id == chatID {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
