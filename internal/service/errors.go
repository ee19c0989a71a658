package service

import (
	"errors"
	"fmt"
)

var (
	ErrSameAccount        = errors.New("a transfer needs two different accounts")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrUnknownField       = errors.New("unknown transaction field")
	ErrInvalidName        = errors.New("invalid account name")
	ErrInvalidParent      = errors.New("invalid parent account")
	ErrAccountHasChildren = errors.New("account has child accounts")
)

// PersistenceError reports a failed read or write against the ledger store.
// When it comes from a multi-step operation, none of the steps were kept.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistenceError reports whether err came from the store.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
