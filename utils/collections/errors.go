package collections

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrIndexOutOfRange      = errors.New("index out of range")
)
