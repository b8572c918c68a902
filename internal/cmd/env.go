package cmd

import (
	"github.com/dsmmcken/distman/internal/config"
	"github.com/dsmmcken/distman/internal/dist"
)

// env is the configuration one command invocation runs against.
type env struct {
	paths    config.Paths
	cfg      *config.Config
	resolver dist.Resolver
}

func loadEnv() (*env, error) {
	config.SetConfigDir(ConfigDir)
	paths, cfg, err := config.ResolvePaths()
	if err != nil {
		return nil, err
	}
	active, err := config.ReadVersionFile(paths.VersionFile)
	if err != nil {
		return nil, err
	}
	return &env{
		paths: paths,
		cfg:   cfg,
		resolver: dist.Resolver{
			InstallRoot:   paths.InstallRoot,
			DistType:      cfg.EffectiveDistType(),
			ActiveVersion: active,
		},
	}, nil
}
