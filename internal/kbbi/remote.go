package kbbi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// NotFoundError is the definitive-miss signal from the remote source: the
// service affirmatively stated the word does not exist, optionally attaching
// suggestion strings. It is terminal for the whole fallback chain; any other
// remote failure merely advances the chain to the next source.
type NotFoundError struct {
	Suggestions []string
}

func (e *NotFoundError) Error() string { return "remote dictionary: word not found" }

// RemoteClient is the external lookup capability. Lookup takes the raw
// (non-normalized) word and returns the remote entry list in the KBBI
// serialization shape, a *NotFoundError on a definitive miss, or any other
// error for transport/format failures.
type RemoteClient interface {
	Lookup(ctx context.Context, word string) ([]any, error)
}

// HTTPRemoteClient queries a KBBI-compatible HTTP API:
// GET {base}/entri/{word} returning {"entri": [...]} on 200, or a 404 whose
// body may carry {"saran": [...]} on a definitive miss.
type HTTPRemoteClient struct {
	client *resty.Client
}

// NewHTTPRemoteClient builds a client for baseURL with a per-request
// timeout. The caller-side context remains the cancellation boundary.
func NewHTTPRemoteClient(baseURL string, timeout time.Duration) *HTTPRemoteClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &HTTPRemoteClient{client: c}
}

// Lookup implements RemoteClient. Transport errors are retried once;
// definitive misses and HTTP-level failures are not.
func (c *HTTPRemoteClient) Lookup(ctx context.Context, word string) ([]any, error) {
	var res *resty.Response
	err := retry.Do(
		func() error {
			var err error
			res, err = c.client.R().
				SetContext(ctx).
				Get("/entri/" + url.PathEscape(word))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("remote dictionary: %w", err)
	}

	switch {
	case res.StatusCode() == http.StatusNotFound:
		var body struct {
			Saran []string `json:"saran"`
		}
		// A malformed 404 body is still a definitive miss, just without
		// suggestions.
		_ = json.Unmarshal(res.Body(), &body)
		return nil, &NotFoundError{Suggestions: body.Saran}
	case res.StatusCode() != http.StatusOK:
		return nil, fmt.Errorf("remote dictionary: status %d", res.StatusCode())
	}

	var doc map[string]any
	if err := json.Unmarshal(res.Body(), &doc); err != nil {
		return nil, fmt.Errorf("remote dictionary: decode: %w", err)
	}
	entri, ok := doc["entri"].([]any)
	if !ok {
		return nil, fmt.Errorf("remote dictionary: unexpected response shape")
	}
	return entri, nil
}
