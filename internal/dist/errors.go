package dist

import "errors"

var (
	ErrInvalidID     = errors.New("invalid distribution name")
	ErrActiveVersion = errors.New("the active distribution cannot be removed")
	ErrNotFound      = errors.New("distribution not found")
	ErrNotActivated  = errors.New("distribution is not installed")
	ErrRemoveFailed  = errors.New("error occurred while removing")
)
