//go:build unix

package fsops

import "golang.org/x/sys/unix"

// Writable reports whether the current process may write to path,
// using the real uid/gid the same way access(2) does.
func Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
