// Package session persists the logged-in identity between runs:
// created at login, removed at logout, and read-only to everything
// else. Every ledger operation is gated on its presence.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"grana/internal/config"
)

// ErrNoSession means nobody is logged in; the caller should send the
// user to login instead of retrying.
var ErrNoSession = errors.New("session: not logged in")

// Session is the identity the remote API issued at login.
type Session struct {
	UserID int64  `toml:"user_id"`
	Name   string `toml:"name"`
}

// Path returns the full path to the session file. It lives next to
// config.toml so one directory holds all local state.
func Path() string {
	return filepath.Join(config.Dir(), "session.toml")
}

// Load reads the stored session. Returns ErrNoSession when no one is
// logged in or the stored file is unusable.
func Load() (Session, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("reading session: %w", err)
	}

	var s Session
	if err := toml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parsing session: %w", err)
	}
	if s.UserID == 0 {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// Save writes the session to disk, owner-readable only.
func Save(s Session) error {
	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// Clear logs out by removing the session file. Clearing an absent
// session is not an error.
func Clear() error {
	if err := os.Remove(Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// Exists reports whether someone is logged in.
func Exists() bool {
	_, err := Load()
	return err == nil
}
