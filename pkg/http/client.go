package http

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

const (
	mimeJSON        = "application/json"
	mimeXML         = "application/xml"
	mimeText        = "text/plain"
	mimeOctetStream = "application/octet-stream"

	defaultMaxResponseBytes = 4 << 20
)

// Client sends requests to a single API. Paths are resolved against the base URL
// unless they are absolute, as the links returned by hypermedia APIs.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	defaultBackoff     *BackoffConfig
	maxResponseBytes   int64
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect bool
	// Dismiss404 treats a 404 answer as an empty success
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// MaxResponseBytes caps the body read from a response, 4 MiB when zero
	MaxResponseBytes int64
	Backoff          *BackoffConfig
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 100
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 10
	}
	if opts.IdleConnTimeout == 0 {
		opts.IdleConnTimeout = 90 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 10 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = mimeJSON
	}
	if opts.MaxResponseBytes <= 0 {
		opts.MaxResponseBytes = defaultMaxResponseBytes
	}

	client := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext:         (&net.Dialer{Timeout: opts.ConnectionTimeout}).DialContext,
		},
		Timeout: opts.ReadTimeout,
	}
	if !opts.FollowRedirect {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		defaultBackoff:     opts.Backoff,
		maxResponseBytes:   opts.MaxResponseBytes,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// send performs a single attempt of r and decodes the answer into the success or error target
func (hc *Client) send(r *Request) (any, any, int, error) {
	bodyReader, contentType, err := hc.encodeBody(r.body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(r.ctx, string(r.method), hc.resolve(r.path, r.query), bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range hc.defaultHeaders {
		req.Header.Set(key, value)
	}
	for key, value := range r.headers {
		req.Header.Set(key, value)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, hc.maxResponseBytes))
	if err != nil {
		return nil, nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if r.success != nil {
			if err := decode(payload, respContentType, r.success); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return r.success, nil, resp.StatusCode, nil
	case resp.StatusCode == http.StatusNotFound && hc.dismiss404:
		return nil, nil, resp.StatusCode, nil
	}

	// an error body that cannot be decoded still reports the status
	if r.failure != nil && len(payload) > 0 && decode(payload, respContentType, r.failure) == nil {
		return nil, r.failure, resp.StatusCode, &StatusError{StatusCode: resp.StatusCode}
	}
	return nil, nil, resp.StatusCode, &StatusError{StatusCode: resp.StatusCode}
}

// encodeBody serializes a request body. Strings and bytes are sent as they are,
// anything else with the client's default content type.
func (hc *Client) encodeBody(body any) (io.Reader, string, error) {
	switch body := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return strings.NewReader(body), mimeText, nil
	case []byte:
		return bytes.NewReader(body), mimeOctetStream, nil
	}

	if hc.defaultContentType == mimeXML {
		encoded, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return bytes.NewReader(encoded), mimeXML, nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
	}
	return bytes.NewReader(encoded), mimeJSON, nil
}

// decode reads payload into target according to the media type. Structured
// suffixes such as application/geo+json and application/problem+json decode as JSON.
func decode(payload []byte, contentType string, target any) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = mimeJSON
	}

	switch {
	case mediaType == mimeXML || mediaType == "text/xml" || strings.HasSuffix(mediaType, "+xml"):
		decoder := xml.NewDecoder(bytes.NewReader(payload))
		decoder.CharsetReader = charsetpkg.NewReaderLabel
		return decoder.Decode(target)
	case mediaType == mimeText:
		if text, ok := target.(*string); ok {
			*text = string(payload)
			return nil
		}
	case mediaType == mimeOctetStream:
		if raw, ok := target.(*[]byte); ok {
			*raw = payload
			return nil
		}
	}
	return json.Unmarshal(payload, target)
}

// resolve joins path to the base URL unless it is absolute and appends the query string
func (hc *Client) resolve(path string, query map[string]string) string {
	url := path
	if !isAbsoluteURL(path) {
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		url = hc.baseURL + path
	}
	if len(query) > 0 {
		url += "?" + buildQueryString(query)
	}
	return url
}

// isAbsoluteURL reports whether path already carries a scheme, as in links returned by an API
func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func buildQueryString(params map[string]string) string {
	values := neturl.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
