//go:build !unix

package fsops

import "os"

// Writable reports whether path carries the owner write bit. Windows only
// exposes the read-only attribute through the mode bits.
func Writable(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}
