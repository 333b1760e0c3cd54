// ABOUTME: Thin client for the server's generated-files endpoints
// ABOUTME: Lists the output file tree and downloads individual files

package files

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Node is one entry in the server's output file tree.
type Node struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Type     string  `json:"type"` // "file" or "directory"
	Size     int64   `json:"size,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

type Client struct {
	serverURL string
	http      *http.Client
}

func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Tree fetches the output file tree. An empty path lists the server's
// configured output directory.
func (c *Client) Tree(ctx context.Context, path string) ([]*Node, error) {
	target := c.serverURL + "/api/files/tree"
	if path != "" {
		target += "?path=" + url.QueryEscape(path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build tree request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch file tree: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch file tree: status %d", resp.StatusCode)
	}

	var nodes []*Node
	if err := json.NewDecoder(resp.Body).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("parse file tree: %w", err)
	}
	return nodes, nil
}

// Download retrieves one generated file's content.
func (c *Client) Download(ctx context.Context, filePath string) ([]byte, error) {
	target := c.serverURL + "/api/files/" + filePath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
