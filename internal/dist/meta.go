package dist

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Meta represents the meta.toml file an installer drops into each
// distribution directory.
type Meta struct {
	InstalledAt time.Time `toml:"installed_at" json:"installed_at"`
}

// ReadMeta reads the meta.toml file from a distribution directory.
func ReadMeta(distDir string) (*Meta, error) {
	data, err := os.ReadFile(filepath.Join(distDir, "meta.toml"))
	if err != nil {
		return nil, fmt.Errorf("reading meta.toml: %w", err)
	}
	var m Meta
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing meta.toml: %w", err)
	}
	return &m, nil
}
