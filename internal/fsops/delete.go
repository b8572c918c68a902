package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
)

// Tree deletes directory subtrees. The zero value uses the OS deleter and
// the process's real write permissions.
type Tree struct {
	Deleter  Deleter
	Writable func(path string) bool
}

func (t Tree) deleter() Deleter {
	if t.Deleter != nil {
		return t.Deleter
	}
	return OSDeleter{}
}

// CanWrite reports write access to path using t.Writable or the process permissions.
func (t Tree) CanWrite(path string) bool {
	if t.Writable != nil {
		return t.Writable(path)
	}
	return Writable(path)
}

// SafeDelete removes root and everything beneath it with a zero-value Tree.
func SafeDelete(root string) error {
	return Tree{}.SafeDelete(root)
}

// SafeDelete removes root and everything beneath it, all or nothing as far
// as permissions go: every entry is checked for write access before the
// first removal. Entries that still fail to delete are skipped, the rest
// are attempted, and a *DeleteFailedError lists what remained.
//
// Symlinks are removed, never followed.
func (t Tree) SafeDelete(root string) error {
	if _, err := os.Lstat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: '%s'", ErrNotFound, root)
		}
		return fmt.Errorf("inspecting '%s': %w", root, err)
	}

	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// A link's own mode bits say nothing about whether it can be
		// unlinked; its parent directory is checked instead.
		if d.Type()&fs.ModeSymlink == 0 && !t.CanWrite(path) {
			return fs.ErrPermission
		}
		entries = append(entries, path)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: you do not have write access to '%s'", ErrPermissionDenied, root)
		}
		return fmt.Errorf("walking '%s': %w", root, err)
	}

	// Reverse lexical order puts every path before its parent directory.
	slices.Sort(entries)
	slices.Reverse(entries)

	d := t.deleter()
	failed := &DeleteFailedError{Root: root}
	for _, path := range entries {
		if err := d.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			failed.add(path, err)
		}
	}
	if len(failed.Paths) > 0 {
		return failed
	}
	return nil
}

// DeleteBestEffort removes root and everything beneath it without a
// validation pass. A missing root is a no-op. Each entry that cannot be
// removed is logged as a warning and returned; the caller is never failed.
func (t Tree) DeleteBestEffort(root string, log logrus.FieldLogger) []string {
	if _, err := os.Lstat(root); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warnf("%s cannot remove", root)
			return []string{root}
		}
		return nil
	}

	var entries []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories were already recorded on the first
			// visit; their removal fails later if they are not empty.
			log.WithError(err).Debugf("skipping %s", path)
			return nil
		}
		entries = append(entries, path)
		return nil
	})

	slices.Sort(entries)
	slices.Reverse(entries)

	var failed []string
	d := t.deleter()
	for _, path := range entries {
		if err := d.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warnf("%s cannot remove", path)
			failed = append(failed, path)
		}
	}
	log.WithField("path", root).WithField("failed", len(failed)).Debug("cache cleared")
	return failed
}
