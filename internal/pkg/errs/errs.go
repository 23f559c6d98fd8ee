package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and a stack trace; a nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark keeps err as the cause while making errors.Is(result, markErr) true.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
