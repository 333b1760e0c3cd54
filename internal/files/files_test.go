// ABOUTME: Unit tests for the generated-files endpoint client
// ABOUTME: Uses httptest servers to cover tree listing and file download

package files

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Tree(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/tree", r.URL.Path)
		assert.Equal(t, "reports", r.URL.Query().Get("path"))
		_, _ = w.Write([]byte(`[
			{"name": "reports", "path": "reports", "type": "directory", "children": [
				{"name": "summary.md", "path": "reports/summary.md", "type": "file", "size": 1024}
			]}
		]`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	nodes, err := c.Tree(context.Background(), "reports")
	require.NoError(t, err)

	require.Len(t, nodes, 1)
	assert.Equal(t, "directory", nodes[0].Type)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "summary.md", nodes[0].Children[0].Name)
	assert.EqualValues(t, 1024, nodes[0].Children[0].Size)
}

func TestClient_TreeRootPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery, "no path query for the root listing")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	nodes, err := NewClient(server.URL).Tree(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestClient_TreeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Tree(context.Background(), "missing")
	assert.Error(t, err)
}

func TestClient_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/reports/summary.md", r.URL.Path)
		_, _ = w.Write([]byte("# Summary\n"))
	}))
	defer server.Close()

	data, err := NewClient(server.URL).Download(context.Background(), "reports/summary.md")
	require.NoError(t, err)
	assert.Equal(t, "# Summary\n", string(data))
}

func TestClient_DownloadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Download(context.Background(), "secret.txt")
	assert.Error(t, err)
}
