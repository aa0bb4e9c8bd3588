package box

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashRetryHashAppearsOnFourthFetch(t *testing.T) {
	var fetches atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := fetches.Add(1)
		sha := ""
		if n >= 4 {
			sha = "da39a3ee5e6b4b0d3255bfef95601890afd80709"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"type":"file","id":"123","name":"a.txt","sha1":"%s"}`, sha)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	var sleeps []time.Duration
	c.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	file, err := c.getFileWithHashRetry(context.Background(), "123", nil)
	require.NoError(t, err)
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", file.SHA1)
	assert.Equal(t, int32(4), fetches.Load())
	// Exponential backoff before attempts 1..3.
	assert.Equal(t, []time.Duration{
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
	}, sleeps)
}

func TestHashRetryGivesUpAfterMaxAttempts(t *testing.T) {
	var fetches atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"file","id":"123","name":"a.txt","sha1":""}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	var sleeps []time.Duration
	c.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	// The loop terminates successfully with the empty hash rather than
	// failing the call.
	file, err := c.getFileWithHashRetry(context.Background(), "123", nil)
	require.NoError(t, err)
	assert.Empty(t, file.SHA1)
	assert.Equal(t, int32(5), fetches.Load(), "initial fetch plus four retries, never more")
	assert.Equal(t, []time.Duration{
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
	}, sleeps)
}

func TestHashRetryStopsOnFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.getFileWithHashRetry(context.Background(), "123", nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUploadRefetchesUntilHashPopulated(t *testing.T) {
	var fetches atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/2.0/files/content", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "77", r.FormValue("folder_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":1,"entries":[{"type":"file","id":"900","name":"a.txt","sha1":""}]}`))
	})
	mux.HandleFunc("/2.0/files/900", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		n := fetches.Add(1)
		sha := ""
		if n >= 2 {
			sha = "abc123"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"type":"file","id":"900","name":"a.txt","sha1":"%s"}`, sha)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(server.URL)
	var sleeps []time.Duration
	c.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

	file, err := c.UploadFile(context.Background(), "77", "a.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", file.SHA1)
	assert.Equal(t, []time.Duration{200 * time.Millisecond}, sleeps)
}

func TestUploadAsyncSameStateMachine(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2.0/files/content", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":1,"entries":[{"type":"file","id":"900","name":"a.txt","sha1":"abc123"}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(server.URL)
	res, ok := <-c.UploadFileAsync(context.Background(), "77", "a.txt", []byte("hello"))
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, "abc123", res.File.SHA1)
}
