package provider

import (
	"context"
	"fmt"
)

// Authenticate exchanges username and password for a session token. A
// well-formed response without a token yields an empty token and no error;
// callers treat that as a failed login.
func (c *Client) Authenticate(ctx context.Context, username, password string) (string, error) {
	if c.authURL == "" || username == "" || password == "" {
		return "", fmt.Errorf("%w: authentication needs an endpoint, a username and a password", ErrPrecondition)
	}

	resp, err := c.request(ctx, "").
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post(c.authURL)
	if err != nil {
		return "", &TransportError{URL: c.authURL, Err: err}
	}
	logResponse(ctx, "authenticate", resp)

	doc, err := parseObject(resp)
	if err != nil {
		return "", err
	}
	return doc.Get("token").String(), nil
}
