package xpyun

import (
	"errors"
	"fmt"
)

// Result codes reported in the response envelope. Zero is success; the
// named non-zero codes are the ones the open platform documents for
// common failures. Any other code is surfaced as a generic *APIError.
const (
	codeOK               = 0
	codeInvalidParameter = 1001
	codeUserNotFound     = 1002
	codeBadSignature     = 1003
	codePrinterNotFound  = 1004
	codeContentTooLong   = 1005
)

// Sentinel errors for the documented platform failure codes. Match them
// with errors.Is; the concrete error value is always a *APIError carrying
// the raw code and message from the response.
var (
	ErrInvalidParameter = errors.New("xpyun: invalid request parameter")
	ErrUserNotFound     = errors.New("xpyun: user not found")
	ErrBadSignature     = errors.New("xpyun: signature verification failed")
	ErrPrinterNotFound  = errors.New("xpyun: printer not found")
	ErrContentTooLong   = errors.New("xpyun: print content too long")
)

// APIError is a non-zero result reported by the platform.
type APIError struct {
	Code int    // vendor result code
	Msg  string // vendor message, verbatim
}

func (e *APIError) Error() string {
	return fmt.Sprintf("xpyun: api error %d: %s", e.Code, e.Msg)
}

// Is maps the documented codes onto the sentinel errors so callers can
// branch with errors.Is without inspecting codes themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrInvalidParameter:
		return e.Code == codeInvalidParameter
	case ErrUserNotFound:
		return e.Code == codeUserNotFound
	case ErrBadSignature:
		return e.Code == codeBadSignature
	case ErrPrinterNotFound:
		return e.Code == codePrinterNotFound
	case ErrContentTooLong:
		return e.Code == codeContentTooLong
	}
	return false
}

// IsAuthError reports whether err is a credentials problem: the platform
// rejected the request signature or does not know the user.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrBadSignature) || errors.Is(err, ErrUserNotFound)
}
