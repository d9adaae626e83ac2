package prompt

import "errors"

var (
	ErrInputClosed     = errors.New("no more input available")
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)
