// Package fitdrop is a small Go client for the FitTracker package download server.
package fitdrop

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const (
	downloadPath   = "/download"
	maxErrorLength = 4 << 10
)

// Client downloads the packaged project from a server.
// Create one with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// DownloadInfo describes a completed download.
type DownloadInfo struct {
	// Filename is taken from the Content-Disposition header, empty if absent.
	Filename string
	// ContentType is the media type announced by the server.
	ContentType string
	// Size is the number of bytes written.
	Size int64
}

// NewClient creates a Client for the server at baseURL, e.g. "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// WithHTTPClient replaces the underlying http.Client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Download performs GET /download and copies the archive into w.
// It fails with ErrShortBody when the transfer ends before Content-Length bytes.
// Non-2xx responses are returned as *APIError. There are no retries.
func (c *Client) Download(ctx context.Context, w io.Writer) (*DownloadInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+downloadPath, nil)
	if err != nil {
		return nil, fmt.Errorf("fitdrop: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fitdrop: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorLength))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fitdrop: failed to read body: %w", err)
	}
	if resp.ContentLength >= 0 && n != resp.ContentLength {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrShortBody, n, resp.ContentLength)
	}

	return &DownloadInfo{
		Filename:    attachmentFilename(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Size:        n,
	}, nil
}

func attachmentFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
