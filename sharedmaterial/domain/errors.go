package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMaterialID = errors.New("invalid shared material ID")
	ErrInvalidMaterial   = errors.New("invalid shared material")
	ErrMaterialNotFound  = func(id string) error { return &NotFoundError{ID: id} }
)

// NotFoundError is returned when a shared material document does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("shared material %s not found", e.ID)
}

// IsNotFound reports whether err was produced by ErrMaterialNotFound.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
