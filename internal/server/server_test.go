package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/pitmaster/internal/session"
)

func newKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newKey(t)
	other := newKey(t)

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := "# pit crew\n\nnot a key line\n" + string(gossh.MarshalAuthorizedKey(allowed))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	tests := []struct {
		name     string
		key      gossh.PublicKey
		path     string
		expected bool
	}{
		{"listed key", allowed, path, true},
		{"unknown key", other, path, false},
		{"missing file", allowed, filepath.Join(t.TempDir(), "missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isKeyAuthorized(tt.key, tt.path))
		})
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServeStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	addr := freeAddr(t)
	controller := session.NewController()

	srv, err := NewServer(Config{
		Addr:               addr,
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		HostKeyPath:        filepath.Join(dir, "keys", "host_ed25519"),
	}, Deps{Source: controller})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "keys", "host_ed25519"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
