package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// MaterialRequest is the body of the create and edit forms.
type MaterialRequest struct {
	Name             string   `json:"name" validate:"required"`
	PurchaseUnitCost *float64 `json:"purchaseUnitCost" validate:"required,gte=0"`
	ProductUnit      *float64 `json:"productUnit" validate:"required,gt=0"`
}

// Normalize trims the name.
func (r *MaterialRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// Validate normalizes r and reports every invalid field at once.
func (r *MaterialRequest) Validate(v *validator.Validate) error {
	r.Normalize()

	err := v.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var result *multierror.Error

	for _, fe := range fieldErrs {
		result = multierror.Append(result, fmt.Errorf("%w: %s failed on %s", ErrInvalidMaterial, fe.Field(), fe.Tag()))
	}

	return result.ErrorOrNil()
}

// Material returns the record the request writes.
func (r MaterialRequest) Material() Material {
	return Material{
		Name:             r.Name,
		PurchaseUnitCost: r.PurchaseUnitCost,
		ProductUnit:      r.ProductUnit,
		UnitCost:         DeriveUnitCost(r.PurchaseUnitCost, r.ProductUnit),
	}
}
