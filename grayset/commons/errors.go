package commons

import "errors"

var (
	ErrIntegerOverflow = errors.New("bit vector wider than 64 bits")
)
