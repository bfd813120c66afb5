package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

// Load reads a profile from disk. A malformed file yields
// ErrProfileCorrupted and leaves the caller's in-memory state untouched.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileCorrupted, err)
	}
	if p.Imports == nil {
		p.Imports = make(map[string]ImportValue)
	}

	return &p, nil
}

// Save writes a profile to disk, creating parent directories as needed
func Save(p *Profile, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
