package box

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFolderRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2.0/folders", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"test","parent":{"id":"0"}}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		w.Write([]byte(`{"type":"folder","id":"999","name":"test","parent":{"type":"folder","id":"0"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	folder, err := c.CreateFolder(context.Background(), "0", "test")
	require.NoError(t, err)
	assert.Equal(t, "999", folder.ID)
	assert.Equal(t, "test", folder.Name)
}

func TestDeleteFolderSendsRecursiveAndIfMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/2.0/folders/42", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("recursive"))
		vals, present := r.Header["If-Match"]
		require.True(t, present)
		assert.Equal(t, []string{""}, vals)
		w.WriteHeader(204)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	assert.NoError(t, c.DeleteFolder(context.Background(), "42", true, ""))
}

func TestUpdateFolderSparseWire(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, _ := io.ReadAll(r.Body)
		// Only the description travels; nothing else may be touched.
		assert.JSONEq(t, `{"description":"x"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"folder","id":"42","description":"x"}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	folder, err := c.UpdateFolder(context.Background(), "42", Update{Description: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", folder.Description)
}

func TestGetFolderItemsPaging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/folders/0/items", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":2,"entries":[{"type":"folder","id":"1","name":"a"},{"type":"file","id":"2","name":"b.txt","sha1":"deadbeef"}]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	items, err := c.GetFolderItems(context.Background(), "0", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, items.TotalCount)
	require.Len(t, items.Entries, 2)
	assert.Equal(t, "folder", items.Entries[0].Type)
	assert.Equal(t, "deadbeef", items.Entries[1].SHA1)
}

func TestGetFolderPropagatesArgumentError(t *testing.T) {
	c := newTestClient("http://unused.invalid")
	_, err := c.GetFolder(context.Background(), "")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "id", argErr.Param)
}
