// Package api implements the HTTP transport to the racha-do-mes backend:
// bearer authentication from the injected session, JSON and multipart
// request encoding, and decoding of the backend's error envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joaolrm/racha-do-mes-fe/internal/session"
)

// Client is the HTTP client for the backend collaborator
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	log     *zap.SugaredLogger
}

// NewClient creates a client for the given base URL. The session provides
// the bearer token; requests without a token are sent unauthenticated
// (login and register).
func NewClient(baseURL string, httpClient *http.Client, sess *session.Session, log *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: sess,
		log:     log,
	}
}

// Do sends a JSON request and decodes a JSON response into out (skipped
// when out is nil). Non-2xx responses are returned as *Error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// FilePart is a binary part of a multipart request
type FilePart struct {
	FieldName string
	FileName  string
	Data      []byte
}

// DoMultipart sends a multipart/form-data POST: fields travel as text
// parts, file (when non-nil) as a binary part.
func (c *Client) DoMultipart(ctx context.Context, path string, fields map[string]string, file *FilePart, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	c.log.Debugw("api request", "method", req.Method, "url", req.URL.Path, "request_id", req.Header.Get("X-Request-ID"))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp.StatusCode, data)
		c.log.Debugw("api error", "method", req.Method, "url", req.URL.Path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}
