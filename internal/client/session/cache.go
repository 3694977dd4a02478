// Package session holds the client's cached identity and the cold-start
// routing decision built on top of it. The cache is a single JSON file:
// at most one identity is ever stored, written on login and removed on
// logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pawararyan169/job-portal/internal/domain"
)

// Identity is the locally cached result of a successful login.
type Identity struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	Token           string `json:"token"`
	Role            string `json:"role"`
	ProfileComplete bool   `json:"profileComplete"`
}

// Cache reads and writes the identity file. The zero value is not
// usable; construct with NewCache.
type Cache struct {
	path string
}

// NewCache returns a cache backed by the given file path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// DefaultPath places the identity file under the user config dir,
// falling back to the working directory when the OS gives us nothing.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".jobportal-session.json"
	}
	return filepath.Join(dir, "jobportal", "session.json")
}

// Load returns the cached identity, or nil when none is stored.
// A corrupt file is treated as absent so a bad write can never wedge
// the app on a broken cache; the caller just sees a logged-out state.
func (c *Cache) Load() (*Identity, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, nil
	}
	if id.UserID == "" || id.Token == "" {
		return nil, nil
	}
	return &id, nil
}

// Save persists the identity, replacing any previous one. The file is
// written with owner-only permissions since it carries a bearer token.
func (c *Cache) Save(id Identity) error {
	if id.UserID == "" || id.Token == "" {
		return domain.ErrInvalidField("identity", "userId and token are required")
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the stored identity. Clearing an empty cache is not an
// error.
func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
