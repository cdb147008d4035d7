package http

import (
	"context"
	"errors"
	"net/http"
)

// RequestMethod represents the HTTP method for the request.
type RequestMethod string

const (
	GET    RequestMethod = http.MethodGet
	POST   RequestMethod = http.MethodPost
	PATCH  RequestMethod = http.MethodPatch
	PUT    RequestMethod = http.MethodPut
	DELETE RequestMethod = http.MethodDelete
)

// Request is a single call built with chained setters and sent by Execute
type Request struct {
	ctx     context.Context
	client  *Client
	method  RequestMethod
	path    string
	query   map[string]string
	headers map[string]string
	body    any
	success any
	failure any
	backoff *BackoffConfig
}

// NewHttpClientRequest creates a GET request to the base URL of client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		ctx:    context.Background(),
		client: client,
		method: GET,
		path:   "/",
	}
}

// WithContext sets the context that bounds the request and its retries.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

func (r *Request) WithMethod(method RequestMethod) *Request {
	r.method = method
	return r
}

// WithPath sets a path relative to the base URL, or an absolute URL.
func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.query = params
	return r
}

// WithHeaders sets headers that override the client defaults.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.headers = headers
	return r
}

func (r *Request) WithBody(body any) *Request {
	r.body = body
	return r
}

// WithSuccessResp sets the value a 2xx body is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.success = successResp
	return r
}

// WithErrorResp sets the value any other body is decoded into.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.failure = errorResp
	return r
}

// WithBackoff sets the backoff configuration for the request, overriding the client's default.
func (r *Request) WithBackoff(backoff *BackoffConfig) *Request {
	r.backoff = backoff
	return r
}

// Execute sends the request and returns the success response, error response, status code, and error if any.
func (r *Request) Execute() (any, any, int, error) {
	switch {
	case r.client == nil:
		return nil, nil, 0, errors.New("client is required")
	case r.method == "":
		return nil, nil, 0, errors.New("method is required")
	case r.path == "":
		return nil, nil, 0, errors.New("path is required")
	}
	if r.ctx == nil {
		r.ctx = context.Background()
	}

	return r.client.sendWithBackoff(r)
}
