package dist

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Installed is one distribution directory under the install root.
type Installed struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	IsActive    bool      `json:"is_active"`
	InstalledAt time.Time `json:"installed_at"`
}

// ListInstalled scans the install root and returns installed distributions,
// newest version first. A missing install root means nothing is installed.
func ListInstalled(r Resolver) ([]Installed, error) {
	entries, err := os.ReadDir(r.InstallRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", r.InstallRoot, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			ids = append(ids, e.Name())
		}
	}

	sortIDsDesc(r, ids)

	var result []Installed
	for _, id := range ids {
		path, active := r.Resolve(id)
		in := Installed{ID: id, Path: path, IsActive: active}
		if meta, err := ReadMeta(path); err == nil {
			in.InstalledAt = meta.InstalledAt
		}
		result = append(result, in)
	}
	return result, nil
}

// InstalledIDs returns just the identifiers from ListInstalled.
func InstalledIDs(r Resolver) ([]string, error) {
	installed, err := ListInstalled(r)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(installed))
	for _, in := range installed {
		ids = append(ids, in.ID)
	}
	return ids, nil
}

// sortIDsDesc orders ids by the semver after the type prefix, descending.
// Identifiers of another type sort after, by name.
func sortIDsDesc(r Resolver, ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		vi, oki := r.VersionOf(ids[i])
		vj, okj := r.VersionOf(ids[j])
		if oki != okj {
			return oki
		}
		if !oki {
			return ids[i] < ids[j]
		}
		if c := compareSemver(vi, vj); c != 0 {
			return c > 0
		}
		return ids[i] > ids[j]
	})
}

// compareSemver compares two semver strings. Returns >0 if a>b, <0 if a<b, 0 if equal.
func compareSemver(a, b string) int {
	aParts := parseSemverParts(a)
	bParts := parseSemverParts(b)
	for k := 0; k < 3; k++ {
		if aParts[k] != bParts[k] {
			return aParts[k] - bParts[k]
		}
	}
	return 0
}

func parseSemverParts(v string) [3]int {
	parts := strings.SplitN(v, ".", 3)
	var result [3]int
	for i, p := range parts {
		fmt.Sscanf(p, "%d", &result[i])
	}
	return result
}
