package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the per-project configuration file name.
const DefaultConfigFile = ".pagegen.yml"

// appName names the XDG config subdirectory.
const appName = "pagegen"

// File is the on-disk configuration shape. Every field is optional.
type File struct {
	// Template is the default archetype token (static|sandbox|element|advanced)
	// used when the TEMPLATE operand is absent.
	Template string `yaml:"template"`

	// Shared turns the shared-model toggle on by default.
	Shared bool `yaml:"shared"`

	// Request turns the routing-request toggle on by default.
	Request bool `yaml:"request"`
}

// Load reads and decodes the configuration at path. A missing file returns
// ErrConfigNotFound.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// Find resolves the implicit configuration file path: .pagegen.yml in the
// current directory, then config.yml under the XDG config home. Returns the
// empty string when nothing is found. Explicitly requested paths do not go
// through here; callers load those directly so a missing file stays an
// error.
func Find() string {
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(xdg.ConfigHome, appName, "config.yml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}
