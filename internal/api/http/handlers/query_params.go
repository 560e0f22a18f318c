package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func parsePositiveIntQuery(c *gin.Context, key string) (value int, present bool, errMsg string) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, false, ""
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed <= 0 {
		return 0, true, "invalid"
	}

	return parsed, true, ""
}

func isValidCurrency(value string) bool {
	if len(value) != 3 {
		return false
	}
	for _, r := range value {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
