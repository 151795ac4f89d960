package rawdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for the hero name list loader
var (
	ErrDuplicateHeroName = errors.New("duplicate hero name")

	ErrInvalidHeroNames = errors.New("invalid hero name list")
)

// HeroNamesConfig is the JSON shape of the hero short-name allowlist.
type HeroNamesConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Heroes []string `json:"heroes"`
}

// LoadHeroNames reads and validates the hero short-name allowlist. Names
// are lowercased; the list must be non-empty and free of duplicates.
func LoadHeroNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hero names file: %w", err)
	}

	var cfg HeroNamesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hero names file: %w", err)
	}

	if len(cfg.Heroes) == 0 {
		return nil, fmt.Errorf("%w: empty hero list", ErrInvalidHeroNames)
	}

	seen := make(map[string]struct{}, len(cfg.Heroes))
	names := make([]string, 0, len(cfg.Heroes))
	for _, name := range cfg.Heroes {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, fmt.Errorf("%w: blank hero name", ErrInvalidHeroNames)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHeroName, name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
