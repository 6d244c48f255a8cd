// Package transport implements the HTTP layer of the CloudControl client:
// request templating, preemptive basic authentication, JSON decoding, and
// mapping of error envelopes to typed errors.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tintoy/cloudcontrol-client-core/internal/constants"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// Request is a templated HTTP request. Path may contain {param} placeholders
// resolved from PathParams.
type Request struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      url.Values
	Body       interface{}
	Headers    map[string]string
}

// Response is the raw outcome of a request.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client sends templated requests against a fixed base address with fixed
// credentials. The zero value is not usable; construct with NewClient.
type Client struct {
	rest      *resty.Client
	logger    cloudcontrol.Logger
	debug     bool
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug HTTP logging.
func WithLogger(logger cloudcontrol.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging. Requires WithLogger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets a whole-request timeout on the underlying transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// NewClient creates a transport bound to baseURL, authenticating every
// request with the given credentials. The authorization header is attached
// eagerly rather than in response to a challenge.
func NewClient(baseURL, username, password string, opts ...Option) *Client {
	client := &Client{
		rest:      resty.New(),
		userAgent: constants.DefaultUserAgent,
	}

	client.rest.SetBaseURL(baseURL)
	client.rest.SetBasicAuth(username, password)
	client.rest.SetHeader("Accept", "application/json")
	client.rest.SetTimeout(constants.DefaultHTTPTimeout)

	for _, opt := range opts {
		opt(client)
	}

	client.rest.SetHeader("User-Agent", client.userAgent)

	return client
}

// Do sends a request and returns its response. Non-2xx statuses return both
// the response and a *cloudcontrol.APIError decoded from the error envelope
// (synthesized from the status line when the envelope is missing or
// malformed).
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	request := c.rest.R().SetContext(ctx)

	if len(req.PathParams) > 0 {
		request.SetPathParams(req.PathParams)
	}

	if len(req.Query) > 0 {
		request.SetQueryParamsFromValues(req.Query)
	}

	if req.Body != nil {
		request.SetHeader("Content-Type", "application/json")
		request.SetBody(req.Body)
	}

	if len(req.Headers) > 0 {
		request.SetHeaders(req.Headers)
	}

	c.logRequest(req)

	rawResponse, err := request.Execute(req.Method, req.Path)
	if err != nil {
		return nil, fmt.Errorf("sending %s %s: %w", req.Method, req.Path, err)
	}

	response := &Response{
		StatusCode: rawResponse.StatusCode(),
		Body:       rawResponse.Body(),
	}

	c.logResponse(req, response)

	if rawResponse.IsSuccess() {
		return response, nil
	}

	return response, c.errorFromResponse(response)
}

// Get sends a templated GET request.
func (c *Client) Get(ctx context.Context, path string, pathParams map[string]string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:     http.MethodGet,
		Path:       path,
		PathParams: pathParams,
		Query:      query,
	})
}

// Post sends a templated POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, pathParams map[string]string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:     http.MethodPost,
		Path:       path,
		PathParams: pathParams,
		Body:       body,
	})
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.rest.GetClient().CloseIdleConnections()

	return nil
}

// errorFromResponse maps a non-success response to a *cloudcontrol.APIError.
func (c *Client) errorFromResponse(response *Response) error {
	envelope, err := cloudcontrol.ParseAPIResponse(response.Body)
	if err != nil || envelope.ResponseCode == "" {
		return &cloudcontrol.APIError{
			ResponseCode: cloudcontrol.ResponseCodeUnexpectedError,
			Message:      http.StatusText(response.StatusCode),
			StatusCode:   response.StatusCode,
		}
	}

	return &cloudcontrol.APIError{
		Operation:    envelope.Operation,
		ResponseCode: envelope.ResponseCode,
		Message:      envelope.Message,
		Info:         envelope.Info,
		StatusCode:   response.StatusCode,
	}
}

func (c *Client) logRequest(req *Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"query":  req.Query.Encode(),
	})
}

func (c *Client) logResponse(req *Request, response *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": response.StatusCode,
		"path":   req.Path,
	})
}
