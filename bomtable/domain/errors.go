package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBOMTableID = errors.New("invalid BOM table ID")
	ErrInvalidBOMTable   = errors.New("invalid BOM table")
	ErrBOMTableNotFound  = func(id string) error { return &NotFoundError{ID: id} }

	// ErrInvalidEdit wraps every rejected item edit except removing the last row.
	ErrInvalidEdit     = errors.New("invalid item edit")
	ErrLastItem        = errors.New("a BOM table keeps at least one item")
	ErrItemIndex       = fmt.Errorf("%w: item index out of range", ErrInvalidEdit)
	ErrUnknownField    = fmt.Errorf("%w: unknown field", ErrInvalidEdit)
	ErrInvalidValue    = fmt.Errorf("%w: invalid value", ErrInvalidEdit)
	ErrReadOnlyField   = fmt.Errorf("%w: unit cost of a shared item is copied from the material", ErrInvalidEdit)
	ErrNotShared       = fmt.Errorf("%w: item is not a shared material", ErrInvalidEdit)
	ErrUnknownMaterial = fmt.Errorf("%w: unknown shared material", ErrInvalidEdit)
)

// NotFoundError is returned when a BOM table document does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("BOM table %s not found", e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
