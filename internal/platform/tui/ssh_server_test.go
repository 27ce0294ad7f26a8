package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, addr string) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.NewGame = func(*log.Logger) Game { return &fakeGame{} }

	srv, err := NewSSHServer(cfg, nil, log.New(io.Discard))
	require.NoError(t, err)
	return srv
}

func TestNewSSHServerNeedsGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	_, err := NewSSHServer(cfg, nil, log.New(io.Discard))
	assert.Error(t, err)
}

func TestListenAndServeReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := newTestServer(t, busy.Addr().String())
	assert.Equal(t, busy.Addr().String(), srv.Addr())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		assert.ErrorContains(t, err, "ssh server")
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe kept blocking after the listener failed")
	}
}
