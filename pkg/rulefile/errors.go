package rulefile

import "errors"

var (
	ErrUnsupportedFormat = errors.New("rulefile: unsupported format")
	ErrInvalidDocument   = errors.New("rulefile: invalid document")
)
