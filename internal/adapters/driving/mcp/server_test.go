package mcp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgsync/internal/logger"
)

func TestNewServer(t *testing.T) {
	t.Run("nil outline service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingOutlineService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Outline: &mockOutlineService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("sync port is optional", func(t *testing.T) {
		ports := &Ports{
			Outline: &mockOutlineService{},
			Sync:    &mockSyncService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingOutlineService)
	assert.NoError(t, (&Ports{Outline: &mockOutlineService{}}).Validate())
}

func TestServer_Handler(t *testing.T) {
	server, err := NewServer(&Ports{Outline: &mockOutlineService{}})
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))

	resp, err = http.Get(ts.URL + "/elsewhere")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/healthz", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_HandlerLogsRequests(t *testing.T) {
	buf := &syncBuffer{}
	logger.SetOutput(buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	server, err := NewServer(&Ports{Outline: &mockOutlineService{}})
	require.NoError(t, err)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "mcp: GET /healthz 200")
	}, time.Second, 10*time.Millisecond)
}

// syncBuffer is written by the server goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServer_RunHTTPStopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{Outline: &mockOutlineService{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RunHTTP did not return after cancel")
	}
}
