package middleware

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/google/uuid"

	"github.com/Shivansh-2508/PGT-Portal/pkg/logger"
)

// RequestIDKey is the header carrying the request id
const RequestIDKey = "X-Request-ID"

// Logger is a Hertz client middleware that tags each outgoing request with a
// request id and logs its outcome. The body is never logged since it carries
// the password.
func Logger() client.Middleware {
	return func(next client.Endpoint) client.Endpoint {
		return func(ctx context.Context, req *protocol.Request, resp *protocol.Response) error {
			start := time.Now()

			requestID := string(req.Header.Peek(RequestIDKey))
			if requestID == "" {
				requestID = uuid.New().String()
				req.Header.Set(RequestIDKey, requestID)
			}

			log := logger.WithRequestID(logger.FromContext(ctx), requestID).With(
				"method", string(req.Method()),
				"path", string(req.URI().Path()),
			)
			log.Debug("request started")

			err := next(ctx, req, resp)

			latency := time.Since(start)
			if err != nil {
				logger.WithError(log, err).Warn("request failed",
					"latency", latency.String(),
					"latency_ms", latency.Milliseconds(),
				)
				return err
			}

			statusCode := resp.StatusCode()
			log = log.With(
				"status", statusCode,
				"latency", latency.String(),
				"latency_ms", latency.Milliseconds(),
			)

			switch {
			case statusCode >= 500:
				log.Error("request completed with server error")
			case statusCode >= 400:
				log.Warn("request completed with client error")
			default:
				log.Info("request completed successfully")
			}

			return nil
		}
	}
}
