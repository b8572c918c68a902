// Package dist manages installed distributions under an install root.
package dist

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolver maps distribution identifiers to directories. It carries the
// configuration explicitly so resolution never reads the environment.
type Resolver struct {
	InstallRoot   string
	DistType      string
	ActiveVersion string
}

// ActiveID is the identifier of the active distribution, or "" if none.
func (r Resolver) ActiveID() string {
	if r.ActiveVersion == "" {
		return ""
	}
	return r.DistType + "-" + r.ActiveVersion
}

// Resolve returns the directory for id and whether id names the active
// distribution.
func (r Resolver) Resolve(id string) (path string, isActive bool) {
	return filepath.Join(r.InstallRoot, id), id != "" && id == r.ActiveID()
}

// VersionOf strips the "<type>-" prefix from id. ok is false when id does
// not carry the prefix or has nothing after it.
func (r Resolver) VersionOf(id string) (version string, ok bool) {
	version, ok = strings.CutPrefix(id, r.DistType+"-")
	return version, ok && version != ""
}

// ValidateID rejects identifiers that are empty or would resolve outside
// the install root.
func ValidateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidID)
	case id == "." || id == "..":
		return fmt.Errorf("%w: '%s'", ErrInvalidID, id)
	case strings.ContainsAny(id, `/\`):
		return fmt.Errorf("%w: '%s' contains a path separator", ErrInvalidID, id)
	}
	return nil
}
