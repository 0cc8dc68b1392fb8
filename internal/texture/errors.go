package texture

import "errors"

// Common errors.
var (
	ErrSizeMismatch = errors.New("sample count does not match texture dimensions")
	ErrShortRecord  = errors.New("record has fewer data fields than its header implies")
	ErrReleased     = errors.New("texture has been released")
)
