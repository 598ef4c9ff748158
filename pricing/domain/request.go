package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// SchemeRequest names a scheme. Saving also carries the pricing to keep.
type SchemeRequest struct {
	Name        string       `json:"name" validate:"required"`
	Note        string       `json:"note"`
	PricingData []PricedItem `json:"pricingData"`
}

func (r *SchemeRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Note = strings.TrimSpace(r.Note)

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
		result = multierror.Append(result, fmt.Errorf("%w: %s failed on %s", ErrInvalidScheme, fe.Namespace(), fe.Tag()))
	}

	return result.ErrorOrNil()
}

func (r SchemeRequest) Scheme() Scheme {
	items := r.PricingData
	if items == nil {
		items = []PricedItem{}
	}

	return Scheme{
		Name:        r.Name,
		Note:        r.Note,
		PricingData: items,
	}
}

// CalculateRequest carries the rows of the dealer pricing page.
type CalculateRequest struct {
	PricingData []PricedItem `json:"pricingData"`
}
