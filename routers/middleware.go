package routers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs it once it has been handled
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// only well formed ids from upstream are kept
		requestID := uuid.New().String()
		if incoming, err := uuid.Parse(ctx.GetHeader(RequestIDHeader)); err == nil {
			requestID = incoming.String()
		}
		ctx.Header(RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()

		fields := []zap.Field{
			zap.String("request id", requestID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(ctx.Errors) > 0 {
			logger.Error("request failed", append(fields, zap.String("errors", ctx.Errors.String()))...)
			return
		}
		logger.Info("request handled", fields...)
	}
}
