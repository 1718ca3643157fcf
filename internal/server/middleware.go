package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// errorDetail is the error envelope every failed request returns.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func abortWithError(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error: errorDetail{Code: code, Message: err.Error()},
	})
}

// requestLogger logs each request with method, path, status, and latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recovery turns panics into a JSON 500 instead of a dropped connection.
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		s.logger.Error().Interface("panic", recovered).Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Error: errorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "An unexpected error occurred",
			},
		})
	})
}
