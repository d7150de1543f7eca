package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UintParam parses a positive integer path parameter.
func UintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return uint(v), nil
}

// UintQuery parses a required positive integer query parameter. A missing
// parameter is an error, not a null filter.
func UintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, fmt.Errorf("%s query parameter is required", name)
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return uint(v), nil
}
