package webhook

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRouter registers the fulfillment, health and metrics routes.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(logger))
	router.Use(gin.Recovery())

	router.POST("/fulfillment", h.Fulfill)
	router.GET("/healthz", h.Health)
	router.HEAD("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zapcore.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			fields = append(fields, zap.String("error", msg))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request handled", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request handled", fields...)
		default:
			logger.Debug("request handled", fields...)
		}
	}
}
