package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// tokenFileName is the fixed name the access token is persisted under.
const tokenFileName = "access_token"

// session owns the authentication token and mirrors every change to a file
// so it survives restarts. Storage failures are never fatal; the session
// simply behaves as logged-out.
type session struct {
	token string
	path  string
}

// newSession creates a session persisted in the user config directory and
// hydrates it from a previously stored token.
func newSession() *session {
	var path string
	if configDir, err := os.UserConfigDir(); err == nil {
		path = filepath.Join(configDir, "fintui", tokenFileName)
	} else {
		log.Debug("no user config dir, session will not persist", "error", err)
	}

	return newSessionAt(path)
}

// newSessionAt creates a session persisted at an explicit path. An empty
// path disables persistence.
func newSessionAt(path string) *session {
	s := &session{path: path}
	s.hydrate()
	return s
}

func (s *session) hydrate() {
	if s.path == "" {
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug("could not read stored token", "error", err)
		}
		return
	}

	s.token = strings.TrimSpace(string(data))
}

// Token returns the current token, empty when logged out.
func (s *session) Token() string { return s.token }

// IsAuthenticated reports whether a token is held.
func (s *session) IsAuthenticated() bool { return s.token != "" }

// SetToken replaces the token and mirrors the change to storage: a write for
// a non-empty token, removal of the entry for an empty one.
func (s *session) SetToken(token string) {
	s.token = token

	if s.path == "" {
		return
	}

	if token == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			log.Debug("could not remove stored token", "error", err)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		log.Debug("could not create session dir", "error", err)
		return
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		log.Debug("could not persist token", "error", err)
	}
}

// Clear drops the token and its stored copy.
func (s *session) Clear() {
	s.SetToken("")
}
