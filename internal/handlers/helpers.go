package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// getIntQuery returns a positive integer query parameter or def.
func getIntQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
