package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/Nitinnn1403/kisan-drishti/internal/config"
)

const contentTypeJSON = "application/json"

// Client talks to the advisory backend. One instance covers every endpoint;
// the two configuration axes are the target origin and whether session
// cookies are carried (credentialed mode). Every call is a single attempt
// with no retry or backoff; surfacing failures is the caller's job.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient builds the backend client from gateway configuration.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("backend client configuration is nil")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BackendURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("BACKEND_URL %q has no scheme or host", cfg.BackendURL)
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.HTTPTimeoutSecs) * time.Second,
	}
	if cfg.SendCookies {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return &Client{base: base, http: httpClient}, nil
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) endpoint(path string) string {
	return c.base.String() + path
}

// do runs one request and decodes a 2xx JSON body into out (when non-nil).
// Non-2xx responses become an *APIError with the backend's message.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("Could not reach the server: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: nonJSONErrorMessage}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	return c.do(req, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// Upload is a file travelling to the backend as one part of a multipart
// form. Name is the form field, Filename the original client-side name.
type Upload struct {
	Name     string
	Filename string
	Reader   io.Reader
}

// postMultipart sends form fields plus an optional file as multipart/form-data.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, file *Upload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.Name, file.Filename)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("copy upload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}
