package lexactivator

import (
	"errors"
	"fmt"
)

// Sentinel errors for payload decoding failures. Both also match ErrClient.
var (
	ErrPayloadMissing   = errors.New("payload missing")
	ErrPayloadMalformed = errors.New("payload malformed")
)

// ErrArgumentRange is returned before the engine is called when a duration or
// date does not fit the engine's unsigned 32-bit argument.
var ErrArgumentRange = errors.New("argument out of range")

// ErrUnexpectedStatus is matched by every *StatusError.
var ErrUnexpectedStatus = errors.New("unexpected license status")

// StatusError is returned by calls that produce a value or nothing when the
// engine answers with a non-OK Status. Use errors.As to recover the Status.
type StatusError struct {
	Function string
	Status   Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lexactivator: %s: status %s", e.Function, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// PayloadError reports a JSON payload that could not be turned into a value
// although the engine indicated success. Kind is ErrPayloadMissing or
// ErrPayloadMalformed.
type PayloadError struct {
	Function string
	Kind     error
	Cause    error
}

func (e *PayloadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("lexactivator: %s: %v", e.Function, e.Kind)
	}
	return fmt.Sprintf("lexactivator: %s: %v: %v", e.Function, e.Kind, e.Cause)
}

func (e *PayloadError) Is(target error) bool {
	return target == ErrClient
}

func (e *PayloadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// UnavailableError is returned when the loaded engine library does not
// export the entry point a call needs, usually because it predates it.
type UnavailableError struct {
	Function string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("lexactivator: %s is not exported by the loaded library", e.Function)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrClient
}

// IsBufferTooSmall reports whether err means an output buffer was too small
// for the engine's answer. The call can be retried by a client built with a
// larger WithMinBufferCapacity.
func IsBufferTooSmall(err error) bool {
	return errors.Is(err, ErrBufferSize)
}

// IsRetriable reports whether err is a transient engine failure worth
// retrying later with the same client. ErrBufferSize is not one; see
// IsBufferTooSmall.
func IsRetriable(err error) bool {
	for _, code := range []ErrorCode{ErrInet, ErrServer, ErrRateLimit} {
		if errors.Is(err, code) {
			return true
		}
	}
	return false
}
