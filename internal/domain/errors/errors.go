package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInternal          = errors.New("internal error")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("account already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmailNotConfirmed = errors.New("email not confirmed")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidToken      = errors.New("could not validate credentials")
	ErrInvalidScope      = errors.New("invalid scope for token")
	ErrRefreshReuse      = errors.New("invalid refresh token")
	ErrEmailToken        = errors.New("invalid token for email verification")
	ErrVerification      = errors.New("verification error")
	ErrRateLimited       = errors.New("rate limit exceeded")
)

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsUnauthorized reports whether err belongs to the family of credential and
// token failures that surface as 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrEmailNotConfirmed) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInvalidScope) ||
		errors.Is(err, ErrRefreshReuse)
}

func IsVerification(err error) bool {
	return errors.Is(err, ErrVerification) || errors.Is(err, ErrEmailToken)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
