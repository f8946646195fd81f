package portal

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the auth token between sessions. Token returns ""
// when no token is saved.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// MemoryTokenStore holds the token in memory only. The zero value is an
// empty, usable store.
type MemoryTokenStore struct {
	token *string
}

func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: &token}
}

func (s MemoryTokenStore) Token() string {
	if s.token == nil {
		return ""
	}
	return *s.token
}

func (s MemoryTokenStore) Save(token string) error {
	if s.token != nil {
		*s.token = token
	}
	return nil
}

func (s MemoryTokenStore) Clear() error { return s.Save("") }

// FileTokenStore keeps the token in a single file under the user config
// dir, the CLI counterpart of the browser's fixed local-storage key.
type FileTokenStore struct {
	Path string
}

// DefaultTokenPath is ~/.config/mavhu/token (per os.UserConfigDir).
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mavhu", "token"), nil
}

func (s FileTokenStore) Token() string {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (s FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token+"\n"), 0o600)
}

func (s FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
