package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"supportchat/internal/domain/llm"
)

func TestClassifyHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   llm.FailureKind
	}{
		{http.StatusUnauthorized, llm.FailureAuth},
		{http.StatusForbidden, llm.FailureAuth},
		{http.StatusTooManyRequests, llm.FailureRateLimited},
		{http.StatusRequestTimeout, llm.FailureTimeout},
		{http.StatusGatewayTimeout, llm.FailureTimeout},
		{http.StatusInternalServerError, llm.FailureUnreachable},
		{http.StatusBadGateway, llm.FailureUnreachable},
	}

	for _, tc := range cases {
		if got := classifyHTTPStatus(tc.status); got != tc.want {
			t.Errorf("status %d: expected %q, got %q", tc.status, tc.want, got)
		}
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	if got := classifyTransportError(context.DeadlineExceeded); got != llm.FailureTimeout {
		t.Errorf("deadline exceeded: expected timeout, got %q", got)
	}
	if got := classifyTransportError(timeoutError{}); got != llm.FailureTimeout {
		t.Errorf("net timeout: expected timeout, got %q", got)
	}
	if got := classifyTransportError(errors.New("connection refused")); got != llm.FailureUnreachable {
		t.Errorf("plain error: expected unreachable, got %q", got)
	}
}
