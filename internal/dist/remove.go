package dist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dsmmcken/distman/internal/fsops"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
)

// Remover deletes installed distributions, refusing the active one.
type Remover struct {
	Resolver Resolver
	Tree     fsops.Tree
	Log      logrus.FieldLogger
}

// Remove deletes the distribution named id.
//
// The active distribution is never touched. While the delete runs an
// exclusive lock is held on the install root, so a concurrent distman
// cannot change the subtree between its permission check and its removal.
func (r *Remover) Remove(id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	path, active := r.Resolver.Resolve(id)
	if active {
		return fmt.Errorf("%w: '%s'", ErrActiveVersion, id)
	}

	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r.notFound(id)
		}
		return fmt.Errorf("%w '%s': %w", ErrRemoveFailed, id, err)
	}

	root := r.Resolver.InstallRoot
	if !r.Tree.CanWrite(root) {
		return fmt.Errorf("%w: you do not have write access to '%s'; rerun with elevated permissions", fsops.ErrPermissionDenied, root)
	}

	unlock, err := fsops.LockDir(root)
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(); err != nil {
			r.log().WithError(err).Warn("releasing install root lock")
		}
	}()

	r.log().WithField("path", path).Debug("removing distribution")
	if err := r.Tree.SafeDelete(path); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrRemoveFailed, id, err)
	}
	return nil
}

func (r *Remover) notFound(id string) error {
	if s := Suggest(r.Resolver, id); s != "" {
		return fmt.Errorf("%w: '%s' (did you mean '%s'?)", ErrNotFound, id, s)
	}
	return fmt.Errorf("%w: '%s'", ErrNotFound, id)
}

func (r *Remover) log() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

// Suggest returns the removable installed identifier that best
// fuzzy-matches id, or "" when nothing is close. The active distribution is
// never suggested.
func Suggest(r Resolver, id string) string {
	installed, err := InstalledIDs(r)
	if err != nil {
		return ""
	}
	active := r.ActiveID()
	ids := installed[:0]
	for _, candidate := range installed {
		if candidate != active {
			ids = append(ids, candidate)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	matches := fuzzy.Find(id, ids)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
