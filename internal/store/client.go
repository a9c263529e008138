package store

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/krotik/pingcollector/internal/domain"
)

// ResultStore is the sink for probe records.
type ResultStore interface {
	Save(ctx context.Context, r *domain.PingResult) error
}

// SubmissionError reports a store response outside the 2xx range. The
// body is kept so the caller can log what the store had to say.
type SubmissionError struct {
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("store rejected record: %d: %s", e.StatusCode, e.Body)
}

const maxErrorBody = 4 << 10

// Client stores records through EliasDB's graph REST API. Each record is
// sent as a single-element array to the node endpoint of the configured
// graph partition.
type Client struct {
	BaseURL string
	Graph   string
	HTTP    *http.Client
}

// New builds a client for the store at baseURL (scheme included).
// insecureSkipVerify turns off TLS certificate verification and exists
// only for deployments that front the store with a self-signed cert.
func New(baseURL, graph string, timeout time.Duration, insecureSkipVerify bool) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	var transport http.RoundTripper
	if insecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Graph:   graph,
		HTTP:    &http.Client{Timeout: timeout, Transport: transport},
	}
}

func (c *Client) Save(ctx context.Context, r *domain.PingResult) error {
	body, err := json.Marshal([]*domain.PingResult{r})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/db/v1/graph/%s/n", c.BaseURL, c.Graph)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &SubmissionError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}
	return nil
}
