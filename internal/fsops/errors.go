package fsops

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNotFound         = errors.New("no such file or directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeleteFailed     = errors.New("delete failed")
	ErrLocked           = errors.New("locked by another process")
)

// DeleteFailedError reports the entries a delete pass could not remove.
// It matches ErrDeleteFailed with errors.Is and unwraps to the individual
// filesystem errors.
type DeleteFailedError struct {
	Root  string
	Paths []string
	errs  *multierror.Error
}

func (e *DeleteFailedError) add(path string, err error) {
	e.Paths = append(e.Paths, path)
	e.errs = multierror.Append(e.errs, err)
}

func (e *DeleteFailedError) Error() string {
	return "cannot remove '" + strings.Join(e.Paths, "', '") + "'"
}

func (e *DeleteFailedError) Is(target error) bool {
	return target == ErrDeleteFailed
}

func (e *DeleteFailedError) Unwrap() error {
	return e.errs.ErrorOrNil()
}
