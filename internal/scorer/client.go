// Package scorer talks to the external GPA scoring service.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alexanderramin/termtracker/internal/domain"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Client submits term records for scoring.
type Client interface {
	// Score sends every recorded term and returns the service's summary.
	Score(ctx context.Context, terms domain.TermRecords) (*domain.GPASummary, error)
}

// httpClient implements Client with a single JSON POST per call.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that posts to cfg.Endpoint.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// scoreRequest is the JSON body sent to the scoring endpoint.
type scoreRequest struct {
	Terms domain.TermRecords `json:"terms"`
}

// errorResponse is the optional JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func (c *httpClient) Score(ctx context.Context, terms domain.TermRecords) (*domain.GPASummary, error) {
	start := time.Now()

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	if terms == nil {
		terms = domain.TermRecords{}
	}
	summary, err := c.doRequest(ctx, scoreRequest{Terms: terms})
	if err != nil && ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = ErrTimeout
		} else {
			err = fmt.Errorf("scoring request: %w", ctx.Err())
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Endpoint:  c.cfg.Endpoint,
		Terms:     len(terms),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})

	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *httpClient) doRequest(ctx context.Context, body scoreRequest) (*domain.GPASummary, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrInvalidResponse, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		var remote errorResponse
		if json.Unmarshal(respBody, &remote) == nil && remote.Error != "" {
			return nil, &RemoteError{Status: httpResp.StatusCode, Message: remote.Error}
		}
		return nil, fmt.Errorf("%w: status %d", ErrInvalidResponse, httpResp.StatusCode)
	}

	var summary domain.GPASummary
	if err := json.Unmarshal(respBody, &summary); err != nil {
		return nil, fmt.Errorf("%w: decoding summary: %v", ErrInvalidResponse, err)
	}
	if summary.CumulativeGPA == "" {
		return nil, fmt.Errorf("%w: missing cumulative_gpa", ErrInvalidResponse)
	}
	if summary.TermGPAs == nil {
		summary.TermGPAs = map[string]domain.GPA{}
	}
	return &summary, nil
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRemote):
		return "REMOTE"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
