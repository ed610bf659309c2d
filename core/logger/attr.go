package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return an empty Attr for missing values, which slog drops,
// so calls like log.Debug("msg", logger.Error(err)) need no nil checks.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Latency creates an attribute for request duration.
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Endpoint creates an attribute for the name of a Postmark endpoint.
func Endpoint(name string) slog.Attr {
	return slog.String("endpoint", name)
}

// ErrorCode creates an attribute for a Postmark API error code.
// Zero means success and yields an empty Attr.
func ErrorCode(code int) slog.Attr {
	if code == 0 {
		return slog.Attr{}
	}
	return slog.Int("error_code", code)
}

// MessageID creates an attribute for a Postmark message id.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}
