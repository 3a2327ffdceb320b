package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"rota-console/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	defaultTimeout  = 10 * time.Second
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the Remote Scheduling Gateway. The caller's bearer
// credential is read from the request context on every call.
type Client struct {
	baseURL    *url.URL
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config, logger ...*zap.Logger) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid gateway base url: %q", raw)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	l := zap.L().Named("gateway.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gateway.client")
	}

	return &Client{
		baseURL:    u,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     l,
	}, nil
}

// problemDetails covers the RFC 7807 body the Gateway returns on failure,
// plus the plain {message} shape some endpoints use.
type problemDetails struct {
	Title   string              `json:"title"`
	Detail  string              `json:"detail"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (p problemDetails) summary() string {
	for _, s := range []string{p.Detail, p.Message} {
		if strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	fields := make([]string, 0, len(p.Errors))
	for field, msgs := range p.Errors {
		if len(msgs) > 0 {
			fields = append(fields, field)
		}
	}
	if len(fields) > 0 {
		sort.Strings(fields)
		return fields[0] + ": " + p.Errors[fields[0]][0]
	}
	return strings.TrimSpace(p.Title)
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, reqBody any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("json marshal request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("http request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set(requestIDHeader, rid)
	}
	if token := contextutil.GetAccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(op, 0, start)
		c.logger.Warn("gateway call failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &Error{Op: op, Err: fmt.Errorf("http do: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()
	observe(op, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		gwErr := &Error{Op: op, StatusCode: resp.StatusCode}
		var pd problemDetails
		if err := json.Unmarshal(raw, &pd); err == nil {
			gwErr.Detail = pd.summary()
		} else {
			gwErr.Body = strings.TrimSpace(string(raw))
		}

		c.logger.Info("gateway returned non-success status",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", gwErr.Detail),
			zap.String("body", gwErr.Body),
		)
		return gwErr
	}

	if out == nil {
		return nil
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("http read: %w", err)}
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		c.logger.Error("gateway response did not decode",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return &Error{Op: op, Decode: true, Err: fmt.Errorf("json unmarshal response: %w", err)}
	}
	return nil
}

// Error is returned by every Client method. StatusCode is zero when the
// Gateway could not be reached or its response could not be read.
// Decode marks a success response whose body did not match the expected
// shape. Detail is only set from a structured error body and is safe to show.
type Error struct {
	Op         string
	StatusCode int
	Decode     bool
	Detail     string
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("gateway %s: status %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("gateway %s: status %d", e.Op, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// Timeout reports whether the call ran out of time.
func (e *Error) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.StatusCode
	}
	return 0
}

// Detail returns the structured error detail carried by err, or "".
func Detail(err error) string {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Detail
	}
	return ""
}
