package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every endpoint answers with: {success, data}
// on the happy path, {success, msg} on failure. The dashboard UI keys off
// the `success` flag, never the HTTP status alone.
type ApiResponse struct {
	Success bool         `json:"success"`
	Msg     string       `json:"msg,omitempty"`
	Data    any          `json:"data,omitempty"`
	Rate    *RateLimiter `json:"rate_limit,omitempty"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, data any) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Rate:    getRateFromContext(c),
	}
}

func ErrorResponse(c *gin.Context, msg string) ApiResponse {
	return ApiResponse{
		Success: false,
		Msg:     msg,
		Rate:    getRateFromContext(c),
	}
}
