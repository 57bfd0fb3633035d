// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxVersionBodyBytes bounds how much of the version endpoint body is read (1 MB).
const maxVersionBodyBytes = 1 << 20

type (
	// Client performs the two HTTP requests the launcher needs: the version
	// page and the archive download.
	Client struct {
		httpClient *http.Client
		userAgent  string
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// NewClient creates a Client. Defaults: http.DefaultClient and userAgent "wwg/dev".
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		userAgent:  "wwg/dev",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetText fetches pageURL and returns its body decoded as UTF-8 text.
func (c *Client) GetText(ctx context.Context, pageURL string) (string, error) {
	resp, err := c.get(ctx, OpFetch, pageURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxVersionBodyBytes))
	if err != nil {
		return "", &NetworkError{Op: "reading", URL: pageURL, Err: err}
	}
	return string(body), nil
}

// Download streams the body at assetURL into dst and returns the byte count.
func (c *Client) Download(ctx context.Context, assetURL string, dst io.Writer) (int64, error) {
	resp, err := c.get(ctx, OpDownload, assetURL)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	n, err := io.Copy(dst, resp.Body)
	if err != nil {
		return n, &NetworkError{Op: OpDownload, URL: assetURL, Err: err}
	}
	return n, nil
}

// get issues a GET and converts transport failures and non-2xx statuses into
// *NetworkError. On success the caller owns resp.Body.
func (c *Client) get(ctx context.Context, op, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: reqURL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, URL: reqURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &NetworkError{Op: op, URL: reqURL, StatusCode: resp.StatusCode}
	}

	return resp, nil
}

// redactURL strips query parameters and fragments from a URL for safe inclusion
// in error messages.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid-url>"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
