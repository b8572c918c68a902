package dist

import (
	"fmt"
	"os"

	"github.com/dsmmcken/distman/internal/config"
)

// Activate makes id the active distribution by writing its version to
// versionFile. The distribution must be installed and of the resolver's type.
func Activate(r Resolver, versionFile, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	version, ok := r.VersionOf(id)
	if !ok {
		return fmt.Errorf("%w: '%s' is not a %s distribution", ErrInvalidID, id, r.DistType)
	}
	path, _ := r.Resolve(id)
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: '%s'", ErrNotActivated, id)
	}
	return config.WriteVersionFile(versionFile, version)
}
