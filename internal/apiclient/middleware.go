package apiclient

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Responder executes a single HTTP transaction.
type Responder func(*http.Request) (*http.Response, error)

// MiddlewareFunc wraps a Responder with extra behaviour.
type MiddlewareFunc func(next Responder) Responder

// chainTransport is an http.RoundTripper that runs every request through a
// middleware chain before handing it to the base transport.
type chainTransport struct {
	base       http.RoundTripper
	middleware []MiddlewareFunc
}

func (t *chainTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	h := Responder(t.base.RoundTrip)
	for i := len(t.middleware) - 1; i >= 0; i-- {
		h = t.middleware[i](h)
	}
	return h(req)
}

// UserAgent sets the User-Agent header on every request.
func UserAgent(agent string) MiddlewareFunc {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			if agent != "" {
				req.Header.Set("User-Agent", agent)
			}
			return next(req)
		}
	}
}

// RequestIDHeader carries the per-interaction correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with a fresh uuid unless one is already set.
func RequestID() MiddlewareFunc {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(RequestIDHeader) == "" {
				req.Header.Set(RequestIDHeader, uuid.New().String())
			}
			return next(req)
		}
	}
}

// Logging records each round trip on logger.
func Logging(logger *zap.Logger) MiddlewareFunc {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next(req)
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()),
				zap.String("request_id", req.Header.Get(RequestIDHeader)),
				zap.Duration("elapsed", time.Since(start)),
			}
			if err != nil {
				logger.Warn("request failed", append(fields, zap.Error(err))...)
				return resp, err
			}
			logger.Debug("request completed", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		}
	}
}
