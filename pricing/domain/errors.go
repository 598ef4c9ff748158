package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSchemeID = errors.New("invalid pricing scheme ID")
	ErrInvalidScheme   = errors.New("invalid pricing scheme")
	ErrNoWorkingSet    = errors.New("no pricing scheme loaded")
	ErrSchemeNotFound  = func(id string) error { return &NotFoundError{ID: id} }
)

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pricing scheme %s not found", e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
