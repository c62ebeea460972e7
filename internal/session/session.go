// Package session tracks the authenticated user for this device install.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Session is the persisted auth state. A zero Session means signed out.
type Session struct {
	UserID      string `toml:"user_id"`
	Email       string `toml:"email,omitempty"`
	AccessToken string `toml:"access_token,omitempty"`
}

// Provider loads the session once and serves the user identity to the
// reconciler. Env vars SAVEUP_USER_ID and SAVEUP_ACCESS_TOKEN override the
// session file.
type Provider struct {
	path    string
	current Session
}

// Load reads the session file at path, tolerating a missing file (signed
// out) and applying env overrides.
func Load(path string) (*Provider, error) {
	p := &Provider{path: path}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &p.current); err != nil {
			return nil, fmt.Errorf("parsing session file: %w", err)
		}
	case os.IsNotExist(err):
		// signed out
	default:
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	if id := os.Getenv("SAVEUP_USER_ID"); id != "" {
		p.current.UserID = id
	}
	if token := os.Getenv("SAVEUP_ACCESS_TOKEN"); token != "" {
		p.current.AccessToken = token
	}

	return p, nil
}

// UserID returns the authenticated user id, or false when signed out.
func (p *Provider) UserID() (string, bool) {
	if p.current.UserID == "" {
		return "", false
	}
	return p.current.UserID, true
}

// Current returns the full session state.
func (p *Provider) Current() Session {
	return p.current
}

// SignIn persists a new session.
func (p *Provider) SignIn(s Session) error {
	if s.UserID == "" {
		return fmt.Errorf("session: user id required")
	}
	if err := p.write(s); err != nil {
		return err
	}
	p.current = s
	return nil
}

// SignOut removes the persisted session. The local ledger is deliberately
// retained: each user's decisions live in their own database file.
func (p *Provider) SignOut() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	p.current = Session{}
	return nil
}

func (p *Provider) write(s Session) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	f, err := os.OpenFile(p.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}
