package employee

import "errors"

var (
	ErrAlreadyReleased = errors.New("employee record already released")
)
