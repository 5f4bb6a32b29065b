package injection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the provider's injection endpoint.
const DefaultBaseURL = "https://inject.socketlabs.com/api/v1/email"

// Request wraps the credentials and the messages of a single injection
// call.
type Request struct {
	serverID uint16
	apiKey   string
	messages []*Message
}

// NewRequest creates a Request. It fails with ErrNoMessages when the
// message list is empty; a request with zero messages is meaningless to the
// provider and is never sent. Message order is preserved. Credentials are
// opaque and not validated.
func NewRequest(serverID uint16, apiKey string, messages []*Message) (*Request, error) {
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	return &Request{
		serverID: serverID,
		apiKey:   apiKey,
		messages: messages,
	}, nil
}

// Messages returns the messages in request order.
func (r *Request) Messages() []*Message {
	return r.messages
}

type requestWire struct {
	ServerID uint16     `json:"ServerId"`
	APIKey   string     `json:"ApiKey"`
	Messages []*Message `json:"Messages"`
}

// MarshalJSON serializes the envelope to the provider's wire shape.
func (r *Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(requestWire{
		ServerID: r.serverID,
		APIKey:   r.apiKey,
		Messages: r.messages,
	})
}

// Client posts injection requests over HTTPS. The zero-configuration
// client targets the provider's production endpoint with a plain
// http.Client; callers needing timeouts, proxies, or pooling supply their
// own via WithHTTPClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the injection endpoint URL. Useful for tests and
// for proxied deployments.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger attaches a structured logger. Logging is discarded by
// default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send serializes the request, issues a single JSON POST to the injection
// endpoint, and decodes the response body. It blocks until the exchange
// completes or fails; there is no retry or backoff. Re-sending the same
// Request is valid and simply issues another call.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrUnexpected, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUnexpected, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "sending injection request",
		slog.Int("messages", len(req.messages)),
		slog.String("url", c.baseURL))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrRequest, err)
	}

	resp, err := ParseResponse(respBody)
	if err != nil {
		// A structured body beats a bare status code, but when the
		// provider returned neither, surface the status.
		if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("%w: unexpected status %d", ErrRequest, httpResp.StatusCode)
		}
		return nil, err
	}

	c.log.DebugContext(ctx, "injection response received",
		slog.String("error_code", string(resp.ErrorCode)),
		slog.Int("message_results", len(resp.MessageResults)))

	return resp, nil
}

// classifyTransportError maps transport failures onto the package error
// taxonomy: redirect loops, URL-bearing request failures, and an
// unclassified bucket for everything else.
func classifyTransportError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrUnexpected, err)
	}

	if strings.Contains(urlErr.Err.Error(), "redirects") {
		return ErrTooManyRedirects
	}

	if urlErr.URL != "" {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}

	return fmt.Errorf("%w: %v", ErrUnexpected, err)
}
