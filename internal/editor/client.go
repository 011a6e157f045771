package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
)

const defaultTimeout = 15 * time.Second

// StatusError is a non-2xx answer from the content API
type StatusError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("content api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("content api: %d %s", e.StatusCode, e.Message)
}

// IsConflict reports whether err is a rejected If-Match write
func IsConflict(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusConflict
}

// IsUnauthorized reports whether err is a missing or rejected admin token
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && (se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden)
}

// RemoteDocument is a document as returned by the API with its version
type RemoteDocument struct {
	Data    json.RawMessage
	Version int64
}

// Client talks to the content API
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where admin tokens come from
func WithTokenSource(ts TokenSource) ClientOption {
	return func(c *Client) { c.token = ts }
}

// NewClient creates a client for an API rooted at baseURL, e.g.
// http://localhost:5000/api/v1
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		token:      StaticToken(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetDocument fetches a whole document
func (c *Client) GetDocument(ctx context.Context, domain string) (*RemoteDocument, error) {
	return c.document(ctx, http.MethodGet, "/content/"+url.PathEscape(domain), nil, service.AnyVersion)
}

// PutDocument stores a whole document. ifMatch is service.AnyVersion or the
// version the caller last read.
func (c *Client) PutDocument(ctx context.Context, domain string, data json.RawMessage, ifMatch int64) (*RemoteDocument, error) {
	return c.document(ctx, http.MethodPut, "/content/"+url.PathEscape(domain), data, ifMatch)
}

// PutSection stores one top-level section; the server keeps the siblings
func (c *Client) PutSection(ctx context.Context, domain, section string, data json.RawMessage, ifMatch int64) (*RemoteDocument, error) {
	path := "/content/" + url.PathEscape(domain) + "/" + url.PathEscape(section)
	return c.document(ctx, http.MethodPut, path, data, ifMatch)
}

// Login exchanges admin credentials for a token
func (c *Client) Login(ctx context.Context, creds Credentials) (*response.AuthResponse, error) {
	body, err := json.Marshal(request.LoginRequest{Username: creds.Username, Password: creds.Password})
	if err != nil {
		return nil, err
	}
	var out response.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes token on the server
func (c *Client) Logout(ctx context.Context, token string) error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, header, nil)
	return err
}

func (c *Client) document(ctx context.Context, method, path string, body []byte, ifMatch int64) (*RemoteDocument, error) {
	header := http.Header{}
	if method != http.MethodGet {
		token, err := c.token(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading admin token: %w", err)
		}
		if token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
		if ifMatch >= 0 {
			header.Set("If-Match", `"`+strconv.FormatInt(ifMatch, 10)+`"`)
		}
	}

	var data json.RawMessage
	resp, err := c.do(ctx, method, path, body, header, &data)
	if err != nil {
		return nil, err
	}
	return &RemoteDocument{Data: data, Version: parseETag(resp.Header.Get("ETag"))}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, header http.Header, out any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var envelope response.ApiResponse[json.RawMessage]
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			se.Message = envelope.Message
			if fields, ok := envelope.Errors.(map[string]any); ok {
				se.Code, _ = fields["code"].(string)
			}
		}
		return resp, se
	}
	if decodeErr != nil {
		return resp, fmt.Errorf("decoding response: %w", decodeErr)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return resp, fmt.Errorf("decoding response data: %w", err)
		}
	}
	return resp, nil
}

// parseETag returns the version in an ETag, or service.AnyVersion
func parseETag(tag string) int64 {
	tag = strings.Trim(strings.TrimPrefix(strings.TrimSpace(tag), "W/"), `"`)
	v, err := strconv.ParseInt(tag, 10, 64)
	if err != nil {
		return service.AnyVersion
	}
	return v
}
