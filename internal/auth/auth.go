// Package auth supplies the signed-in user identity the game engine
// requires before it can create a session. The real identity provider
// is external; this package only defines the boundary and a
// file-backed implementation for stored credentials.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotSignedIn is returned when no user credentials are available.
var ErrNotSignedIn = errors.New("no authenticated user found")

// User is the authenticated identity. UID is the opaque id the backend
// keys sessions on.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// Provider yields the current user and a bearer token for API calls.
type Provider interface {
	// CurrentUser returns the signed-in user, or ErrNotSignedIn.
	CurrentUser(ctx context.Context) (*User, error)

	// IDToken returns a token to present as the Authorization bearer.
	IDToken(ctx context.Context) (string, error)
}

// credentials is the on-disk shape written by the sign-in flow.
type credentials struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// FileProvider reads stored credentials from a JSON file.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading from path. An empty path
// resolves to the default credentials location.
func NewFileProvider(path string) (*FileProvider, error) {
	if path == "" {
		p, err := DefaultCredentialsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileProvider{path: path}, nil
}

func (p *FileProvider) load() (*credentials, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if creds.User.UID == "" {
		return nil, ErrNotSignedIn
	}
	return &creds, nil
}

func (p *FileProvider) CurrentUser(ctx context.Context) (*User, error) {
	creds, err := p.load()
	if err != nil {
		return nil, err
	}
	u := creds.User
	return &u, nil
}

func (p *FileProvider) IDToken(ctx context.Context) (string, error) {
	creds, err := p.load()
	if err != nil {
		return "", err
	}
	return creds.Token, nil
}

// DefaultCredentialsPath resolves the credentials file location:
// NINJA_CREDENTIALS env var, then $XDG_CONFIG_HOME/numberninja, then
// ~/.config/numberninja.
func DefaultCredentialsPath() (string, error) {
	if p := os.Getenv("NINJA_CREDENTIALS"); p != "" {
		return p, nil
	}
	cfgHome := os.Getenv("XDG_CONFIG_HOME")
	if cfgHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		cfgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgHome, "numberninja", "credentials.json"), nil
}

// Static is a fixed-identity Provider, used in tests and for local
// development against a stub backend.
type Static struct {
	User  User
	Token string
}

func (s *Static) CurrentUser(ctx context.Context) (*User, error) {
	if s.User.UID == "" {
		return nil, ErrNotSignedIn
	}
	u := s.User
	return &u, nil
}

func (s *Static) IDToken(ctx context.Context) (string, error) {
	return s.Token, nil
}
