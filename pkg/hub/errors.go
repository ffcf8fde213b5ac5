package hub

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
)

func statusCode(err error) int {
	var transpErr *transport.Error
	if !errors.As(err, &transpErr) {
		return 0
	}

	return transpErr.StatusCode
}

func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

func IsForbidden(err error) bool {
	return statusCode(err) == http.StatusForbidden
}

func IsRateLimited(err error) bool {
	return statusCode(err) == http.StatusTooManyRequests
}

func IsServerError(err error) bool {
	return statusCode(err) >= http.StatusInternalServerError
}

func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Reason is a short label for a failed request, used as a log field.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return "not_found"
	case IsUnauthorized(err):
		return "unauthorized"
	case IsForbidden(err):
		return "forbidden"
	case IsRateLimited(err):
		return "rate_limited"
	case IsServerError(err):
		return "server_error"
	case IsTimeout(err):
		return "timeout"
	default:
		return "unknown"
	}
}
