package box

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileRawBytes(t *testing.T) {
	payload := []byte{0x25, 0x50, 0x44, 0x46} // not valid JSON on purpose
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/files/123/content", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(payload)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	got, err := c.ReadFile(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestReadFileNotReady(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.ReadFile(context.Background(), "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotReady)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 3*time.Second, apiErr.RetryAfter)
}

func TestGetThumbnailNotReady(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/files/123/thumbnail.png", r.URL.Path)
		assert.Equal(t, "32", r.URL.Query().Get("min_width"))
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.GetThumbnail(context.Background(), "123", 32, 0)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestWriteFileSendsEtag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/files/123/content", r.URL.Path)
		assert.Equal(t, "v7", r.Header.Get("If-Match"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":1,"entries":[{"type":"file","id":"123","name":"a.txt","sha1":"ffff"}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	file, err := c.WriteFile(context.Background(), "123", "a.txt", "v7", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, "ffff", file.SHA1)
}

func TestDeleteFileStaleEtag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(412)
		w.Write([]byte(`{"type":"error","status":"412","code":"precondition_failed","message":"etag mismatch"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.DeleteFile(context.Background(), "123", "stale")
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestCopyFileBlankNameOmitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/files/5/copy", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"file","id":"6","name":"a.txt"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	file, err := c.CopyFile(context.Background(), "5", "77", "")
	require.NoError(t, err)
	assert.Equal(t, "6", file.ID)
}

func TestSearchRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/search", r.URL.Path)
		assert.Equal(t, "taxes", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":1,"entries":[{"type":"file","id":"8","name":"taxes.pdf"}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	items, err := c.Search(context.Background(), "taxes", 0, 0)
	require.NoError(t, err)
	require.Len(t, items.Entries, 1)
	assert.Equal(t, "taxes.pdf", items.Entries[0].Name)
}

func TestSearchPaginationFailsLocally(t *testing.T) {
	// The server must never be reached on an invalid window.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not have been dispatched")
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Search(context.Background(), "taxes", 2, 3)
	assert.ErrorIs(t, err, ErrInvalidPagination)
}
