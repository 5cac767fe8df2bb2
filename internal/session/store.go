// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package session persists the signed-in identity as plain-text files under
// the state directory: one file per value (token, username). The token file
// is re-read on every access so a concurrent clear by the 401 handler is
// observed by requests already in flight.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inventorycapture/partscout/pkg/types"
)

const (
	tokenFile    = "token"
	usernameFile = "username"
)

// Store reads and writes session credentials in dir.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Token returns the current bearer token, or "" when signed out. It always
// reads from disk; callers must not cache the result across requests.
func (s *Store) Token() string {
	return s.read(tokenFile)
}

// Current returns the stored session and whether one exists.
func (s *Store) Current() (types.Session, bool) {
	sess := types.Session{
		Username: s.read(usernameFile),
		Token:    s.read(tokenFile),
	}
	return sess, sess.Authenticated()
}

// Save writes the session credentials.
func (s *Store) Save(sess types.Session) error {
	if err := s.write(tokenFile, sess.Token); err != nil {
		return err
	}
	return s.write(usernameFile, sess.Username)
}

// Clear removes the stored credentials. Missing files are not errors.
func (s *Store) Clear() error {
	for _, name := range []string{tokenFile, usernameFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) read(name string) string {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) write(name, value string) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
