package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter, writing the invalid-request error
// itself when parsing fails.
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return 0, false
	}
	return uint(v), true
}

// queryID is pathID for required query parameters.
func queryID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil || v == 0 {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return 0, false
	}
	return uint(v), true
}

// queryInt parses an optional numeric query parameter; zero means unset and
// lets the use case apply its defaults.
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
