// Package provider talks to the Creditsafe Connect REST API: authentication,
// company search and company credit reports.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var (
	// ErrNotFound matches responses the connector treats as "company not found".
	ErrNotFound = errors.New("company not found")
	// ErrMalformed indicates a response body that is not the expected JSON object.
	ErrMalformed = errors.New("malformed response")
	// ErrPrecondition indicates a call made without its required inputs.
	ErrPrecondition = errors.New("precondition violated")
)

// RejectedError is a provider answer meaning the company cannot be served:
// HTTP 400/401/403, or a search result without a companies list.
type RejectedError struct {
	StatusCode int
	Reason     string
}

func (e *RejectedError) Error() string {
	return e.Reason
}

// Is makes RejectedError match ErrNotFound.
func (e *RejectedError) Is(target error) bool {
	return target == ErrNotFound
}

// TransportError is a network or connection fault.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client is a Creditsafe Connect client. It holds no session state; the
// token returned by Authenticate is passed to every later call.
type Client struct {
	http         *resty.Client
	authURL      string
	companiesURL string
}

// New creates a client for the given authentication and company endpoints.
func New(authURL, companiesURL string) *Client {
	return NewWithClient(resty.New(), authURL, companiesURL)
}

// NewWithClient creates a client on top of an existing resty client.
func NewWithClient(rc *resty.Client, authURL, companiesURL string) *Client {
	return &Client{
		http:         rc,
		authURL:      authURL,
		companiesURL: companiesURL,
	}
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token != "" {
		r.SetHeader("Authorization", token)
	}
	return r
}

func rejected(code int) bool {
	switch code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

// parseObject validates that body is a JSON object.
func parseObject(resp *resty.Response) (gjson.Result, error) {
	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: %s: body is not JSON", ErrMalformed, resp.Status())
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: %s: body is not a JSON object", ErrMalformed, resp.Status())
	}
	return doc, nil
}

func logResponse(ctx context.Context, op string, resp *resty.Response) {
	zerolog.Ctx(ctx).Debug().
		Str("op", op).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("provider response")
}
