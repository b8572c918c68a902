package config

import "path/filepath"

const (
	versionFileName = "distribution-version"
	birCacheDir     = "bir_cache"
	jarCacheDir     = "jar_cache"
	distsDir        = "dists"
)

// Paths is the on-disk layout for one distman home. It is resolved once at
// the CLI edge and passed down so the core never consults the environment.
type Paths struct {
	Home        string `json:"home"`
	InstallRoot string `json:"install_root"`
	VersionFile string `json:"version_file"`
	BirCache    string `json:"bir_cache"`
	JarCache    string `json:"jar_cache"`
}

// NewPaths derives the layout for home. A non-empty installRoot overrides
// the default <home>/dists.
func NewPaths(home, installRoot string) Paths {
	if installRoot == "" {
		installRoot = filepath.Join(home, distsDir)
	}
	return Paths{
		Home:        home,
		InstallRoot: installRoot,
		VersionFile: filepath.Join(home, versionFileName),
		BirCache:    filepath.Join(home, birCacheDir),
		JarCache:    filepath.Join(home, jarCacheDir),
	}
}

// ResolvePaths loads config.toml from Home() and returns the layout it describes.
func ResolvePaths() (Paths, *Config, error) {
	cfg, err := Load()
	if err != nil {
		return Paths{}, nil, err
	}
	return NewPaths(Home(), cfg.InstallRoot), cfg, nil
}
