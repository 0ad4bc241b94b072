package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/pkg/logger"
)

// ErrorResponse is the standardized error body returned to every caller.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Engine  string `json:"engine,omitempty"`
	Field   string `json:"field,omitempty"`
	Retries bool   `json:"retryable,omitempty"`
}

// ErrorHandler centralizes error-to-response translation. Every engine and
// orchestrator boundary error is an *engine.Error with a closed Kind, so the
// status code comes from a direct switch over Kind rather than sniffing the
// error message.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		eerr := engine.AsEngineError("", "", err)
		statusCode := statusForKind(eerr.Kind)

		resp := ErrorResponse{
			Error:   eerr.Error(),
			Code:    string(eerr.Kind),
			Engine:  eerr.Engine,
			Field:   eerr.Field,
			Retries: eerr.Kind.Retryable(),
		}

		logError(log, statusCode, eerr, c)
		c.JSON(statusCode, resp)
	}
}

func statusForKind(kind engine.Kind) int {
	switch kind {
	case engine.KindInvalidInput:
		return http.StatusBadRequest
	case engine.KindUnknownEngine, engine.KindUnknownWorkflow:
		return http.StatusNotFound
	case engine.KindConsentRequired:
		return http.StatusForbidden
	case engine.KindTimeout:
		return http.StatusGatewayTimeout
	case engine.KindDependencyUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func logError(log logger.Logger, statusCode int, err *engine.Error, c *gin.Context) {
	fields := []interface{}{
		"status", statusCode,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
		"kind", string(err.Kind),
		"error", err.Error(),
	}
	if requestID := c.Request.Header.Get("X-Request-ID"); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}

	switch {
	case statusCode >= 500:
		log.Error("request failed", fields...)
	case statusCode >= 400:
		log.Warn("request failed", fields...)
	default:
		log.Info("request failed", fields...)
	}
}

// IsEngineError reports whether err unwraps to an *engine.Error, for callers
// that need to branch on it outside this middleware.
func IsEngineError(err error) (*engine.Error, bool) {
	var eerr *engine.Error
	ok := errors.As(err, &eerr)
	return eerr, ok
}
