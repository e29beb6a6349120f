package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestLogger пишет одну запись logrus на запрос с request_id
func RequestLogger() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		requestID := gCtx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		gCtx.Set(requestIDKey, requestID)
		gCtx.Header(RequestIDHeader, requestID)

		start := time.Now()
		gCtx.Next()

		fields := log.Fields{
			"request_id": requestID,
			"method":     gCtx.Request.Method,
			"path":       gCtx.Request.URL.Path,
			"status":     gCtx.Writer.Status(),
			"latency":    time.Since(start).String(),
		}
		if userID, _, ok := CurrentUser(gCtx); ok {
			fields["user_id"] = userID
		}

		entry := log.WithFields(fields)
		switch {
		case gCtx.Writer.Status() >= 500:
			entry.Error("request failed")
		case len(gCtx.Errors) > 0:
			entry.Warn(gCtx.Errors.String())
		default:
			entry.Info("request handled")
		}
	}
}

// Logger возвращает запись logrus с request_id текущего запроса
func Logger(gCtx *gin.Context) *log.Entry {
	return log.WithField("request_id", gCtx.GetString(requestIDKey))
}
