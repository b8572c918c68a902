// Package fsops holds the filesystem primitives behind distribution removal
// and cache clearing.
package fsops

import "os"

// Deleter abstracts removal of a single filesystem entry.
// Enables tests to inject failures part-way through a delete.
type Deleter interface {
	Remove(path string) error
}

// OSDeleter implements Deleter using os.Remove.
type OSDeleter struct{}

func (OSDeleter) Remove(path string) error {
	return os.Remove(path)
}
