package dist

import (
	"github.com/dsmmcken/distman/internal/config"
	"github.com/dsmmcken/distman/internal/fsops"
	"github.com/sirupsen/logrus"
)

// ClearBirCache deletes the compiled BIR cache. Failures are logged and
// returned, never raised.
func ClearBirCache(t fsops.Tree, p config.Paths, log logrus.FieldLogger) []string {
	return t.DeleteBestEffort(p.BirCache, log.WithField("cache", "bir"))
}

// ClearJarCache deletes the compiled jar cache. Failures are logged and
// returned, never raised.
func ClearJarCache(t fsops.Tree, p config.Paths, log logrus.FieldLogger) []string {
	return t.DeleteBestEffort(p.JarCache, log.WithField("cache", "jar"))
}
