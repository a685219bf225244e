package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// ErrUnexpectedStatus is wrapped by every error returned for a non-2xx response.
var ErrUnexpectedStatus = errors.New("http error")

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultQueryParams map[string]string
	defaultContentType string
	sensitiveParams    []string
	logger             HTTPLogger
	limiter            *rate.Limiter
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultQueryParams  map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// SensitiveQueryParams are masked before URLs reach the Logger.
	SensitiveQueryParams []string
	Logger               HTTPLogger
	// RequestsPerSecond throttles outgoing requests; zero disables throttling.
	RequestsPerSecond float64
	Burst             int
	// Limiter, when set, is used instead of RequestsPerSecond so several clients can share one budget.
	Limiter *rate.Limiter
	// Transport overrides the pooled transport built from the connection options.
	Transport http.RoundTripper
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	limiter := opts.Limiter
	if limiter == nil && opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultQueryParams: opts.DefaultQueryParams,
		defaultContentType: opts.DefaultContentType,
		sensitiveParams:    opts.SensitiveQueryParams,
		logger:             opts.Logger,
		limiter:            limiter,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters, headers, and response types.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodGet, path, queryParams, headers, nil, successResp, errorResp)
}

// Post sends a POST request to the specified path with optional query parameters, headers, and response types.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Post(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodPost, path, queryParams, headers, body, successResp, errorResp)
}

// doRequest sends one HTTP request and decodes the response into successResp or errorResp.
// Requests are never retried; a non-2xx status is returned as an error wrapping ErrUnexpectedStatus,
// except a 404 when the client dismisses them.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if hc.limiter != nil {
		if err := hc.limiter.Wait(ctx); err != nil {
			return nil, nil, 0, fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}

	query := hc.buildQuery(queryParams)
	requestURL := hc.buildURL(path)
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	bodyReader, contentType, rawBody, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	loggedURL := hc.redactURL(requestURL, query)
	loggedHeaders := flattenHeaders(req.Header)
	hc.logger.LogRequest(method, loggedURL, loggedHeaders, rawBody)

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		hc.logger.LogResponseError(method, loggedURL, loggedHeaders, rawBody, 0, "", time.Since(start).Milliseconds(), err)
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		hc.logger.LogResponseError(method, loggedURL, loggedHeaders, rawBody, resp.StatusCode, "", latency, err)
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		hc.logger.LogResponseSuccess(method, loggedURL, loggedHeaders, rawBody, resp.StatusCode, string(bodyBytes), latency)
		if successResp != nil {
			if err = hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	hc.logger.LogResponseError(method, loggedURL, loggedHeaders, rawBody, resp.StatusCode, string(bodyBytes), latency, statusErr)

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	if errorResp != nil {
		if err = hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// encodeBody serializes body according to its type and the client's default content type
func (hc *Client) encodeBody(body any) (io.Reader, string, string, error) {
	if body == nil {
		return nil, "", "", nil
	}

	switch body := body.(type) {
	case string:
		return strings.NewReader(body), "text/plain", body, nil
	case []byte:
		return bytes.NewReader(body), "application/octet-stream", "", nil
	}

	var (
		encoded []byte
		err     error
	)
	contentType := hc.defaultContentType
	switch contentType {
	case "application/xml":
		encoded, err = xml.Marshal(body)
	case "text/plain":
		encoded = []byte(fmt.Sprintf("%v", body))
	default:
		encoded, err = json.Marshal(body)
		contentType = "application/json"
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	return bytes.NewReader(encoded), contentType, string(encoded), nil
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins the base URL and path with exactly one slash
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQuery merges the client's default query parameters with the per-request ones
func (hc *Client) buildQuery(params map[string]string) url.Values {
	query := url.Values{}
	for key, value := range hc.defaultQueryParams {
		query.Set(key, value)
	}
	for key, value := range params {
		query.Set(key, value)
	}
	return query
}

func (hc *Client) redactURL(requestURL string, query url.Values) string {
	if len(hc.sensitiveParams) == 0 || len(query) == 0 {
		return requestURL
	}

	masked := url.Values{}
	for key, values := range query {
		masked[key] = values
	}
	for _, key := range hc.sensitiveParams {
		if masked.Has(key) {
			masked.Set(key, "***")
		}
	}
	return strings.SplitN(requestURL, "?", 2)[0] + "?" + masked.Encode()
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key := range header {
		flat[key] = header.Get(key)
	}
	return flat
}
