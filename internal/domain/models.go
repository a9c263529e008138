package domain

import (
	"strconv"
	"time"
)

// KindPingResult identifies ping records in the graph store.
const KindPingResult = "PingResult"

// PingResult is the outcome of a single probe cycle. The key is the Unix
// timestamp (seconds) captured when the cycle started, which also serves
// as the record identifier in the store. Records are built once, stored
// once, and then dropped; a failed submission is not retried.
type PingResult struct {
	Key     string `json:"key"`
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Success bool   `json:"success"`
	Result  string `json:"result"`
}

// NewSuccess builds the record for a probe whose GET completed. Result
// carries the elapsed wall-clock time as text.
func NewSuccess(ts int64, url string, elapsed time.Duration) *PingResult {
	return &PingResult{
		Key:     strconv.FormatInt(ts, 10),
		Kind:    KindPingResult,
		URL:     url,
		Success: true,
		Result:  elapsed.String(),
	}
}

// NewFailure builds the record for a probe whose GET failed for any
// reason. Result carries the error text.
func NewFailure(ts int64, url, reason string) *PingResult {
	return &PingResult{
		Key:     strconv.FormatInt(ts, 10),
		Kind:    KindPingResult,
		URL:     url,
		Success: false,
		Result:  reason,
	}
}
