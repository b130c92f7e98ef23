package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCredentials(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}
	return path
}

func TestFileProvider_ReadsCredentials(t *testing.T) {
	path := writeCredentials(t, `{"user":{"uid":"abc123","email":"kid@example.com"},"token":"tok-1"}`)

	p, err := NewFileProvider(path)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	user, err := p.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.UID != "abc123" || user.Email != "kid@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	token, err := p.IDToken(context.Background())
	if err != nil {
		t.Fatalf("id token: %v", err)
	}
	if token != "tok-1" {
		t.Errorf("token = %q, want tok-1", token)
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	p, err := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = p.CurrentUser(context.Background())
	if !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("err = %v, want ErrNotSignedIn", err)
	}
}

func TestFileProvider_EmptyUID(t *testing.T) {
	path := writeCredentials(t, `{"user":{"uid":""},"token":"tok"}`)

	p, err := NewFileProvider(path)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = p.CurrentUser(context.Background())
	if !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("err = %v, want ErrNotSignedIn", err)
	}
}

func TestStatic(t *testing.T) {
	s := &Static{User: User{UID: "u1"}, Token: "t1"}

	user, err := s.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.UID != "u1" {
		t.Errorf("uid = %q, want u1", user.UID)
	}

	empty := &Static{}
	if _, err := empty.CurrentUser(context.Background()); !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("err = %v, want ErrNotSignedIn", err)
	}
}
