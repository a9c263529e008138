package probe

import (
	"context"
	"net/http"
	"time"
)

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check issues one GET and measures the wall-clock time of the exchange.
// Any completed exchange counts as a successful probe regardless of
// status code; the record captures reachability and latency, not HTTP
// health.
func (h *HTTPChecker) Check(ctx context.Context, target string) Outcome {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Outcome{Success: false, Elapsed: time.Since(start), Message: err.Error()}
	}

	resp, err := h.Client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return Outcome{Success: false, Elapsed: elapsed, Message: err.Error()}
	}
	defer resp.Body.Close()

	return Outcome{Success: true, Elapsed: elapsed, Message: resp.Status}
}
