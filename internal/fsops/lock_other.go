//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package fsops

// LockFileName is created inside a locked directory.
const LockFileName = ".distman.lock"

// LockDir is a no-op where flock(2) is unavailable.
func LockDir(dir string) (unlock func() error, err error) {
	return func() error { return nil }, nil
}
