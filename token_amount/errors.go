package token_amount

import (
	"errors"

	"github.com/krazyTry/spl-token-go/u64"
)

var (
	// ErrRange is returned when a raw amount falls outside [0, 2^64-1].
	ErrRange = u64.ErrOutOfRange

	// ErrTokenMismatch is returned by operations combining amounts of different tokens.
	ErrTokenMismatch = errors.New("token mismatch")

	ErrInvalidNumber  = errors.New("invalid number")
	ErrInvalidPercent = errors.New("invalid percent")
	ErrNilToken       = errors.New("token is nil")
)
