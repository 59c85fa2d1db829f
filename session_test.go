package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestSessionPersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", tokenFileName)

	s := newSessionAt(path)
	be.False(t, s.IsAuthenticated())

	s.SetToken("abc123")
	be.True(t, s.IsAuthenticated())
	be.Equal(t, "abc123", s.Token())

	data, err := os.ReadFile(path)
	be.NilErr(t, err)
	be.Equal(t, "abc123", string(data))

	// a fresh session hydrates from the stored file
	restored := newSessionAt(path)
	be.True(t, restored.IsAuthenticated())
	be.Equal(t, "abc123", restored.Token())
}

func TestSessionHydrateTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), tokenFileName)
	be.NilErr(t, os.WriteFile(path, []byte("  abc123\n"), 0o600))

	s := newSessionAt(path)
	be.Equal(t, "abc123", s.Token())
}

func TestSessionClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), tokenFileName)

	s := newSessionAt(path)
	s.SetToken("abc123")
	s.Clear()

	be.False(t, s.IsAuthenticated())
	_, err := os.Stat(path)
	be.True(t, os.IsNotExist(err))

	// clearing an already-clear session is fine
	s.Clear()
}

func TestSessionWithoutPath(t *testing.T) {
	s := newSessionAt("")
	s.SetToken("abc123")
	be.Equal(t, "abc123", s.Token())
	s.Clear()
	be.False(t, s.IsAuthenticated())
}
