package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes a 200 response with the payload as the body.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the projected new entity as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes the canonical error body for a code, with its default status
// and message.
func Error(c *gin.Context, code ErrorCode) {
	c.JSON(Status(code), gin.H{
		"code":    code,
		"message": Message(code),
	})
}

// ErrorWith writes the canonical error body plus extra payload keys, e.g.
// the per-form error list of a rejected translation.
func ErrorWith(c *gin.Context, code ErrorCode, extra map[string]any) {
	body := gin.H{
		"code":    code,
		"message": Message(code),
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(Status(code), body)
}

// HTTPError writes an error body with an explicit status and message,
// bypassing the code tables. Used by middleware for auth failures.
func HTTPError(c *gin.Context, status int, msg string, code ErrorCode) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": msg,
	})
}
