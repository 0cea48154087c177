package llmprovider

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"supportchat/internal/domain/llm"
	"supportchat/internal/infrastructure/metrics"
)

// classifyHTTPStatus maps an upstream HTTP status to a failure kind.
func classifyHTTPStatus(status int) llm.FailureKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return llm.FailureAuth
	case status == http.StatusTooManyRequests:
		return llm.FailureRateLimited
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return llm.FailureTimeout
	default:
		return llm.FailureUnreachable
	}
}

// classifyTransportError maps a failed round trip to a failure kind.
func classifyTransportError(err error) llm.FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return llm.FailureTimeout
	}
	return llm.FailureUnreachable
}

// observe records the outcome of one reply generation attempt.
func observe(provider string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordLLMRequest(provider, status, time.Since(start).Seconds())
}
