package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// TableRequest is a BOM table as submitted by the editor, written wholesale.
type TableRequest struct {
	TableName string `json:"tableName" validate:"required"`
	Items     []Item `json:"items" validate:"min=1,dive"`
	Category  string `json:"category"`
	ImageURL  string `json:"imageUrl"`
}

// Validate trims the text fields and reports every invalid field at once.
func (r *TableRequest) Validate(v *validator.Validate) error {
	r.TableName = strings.TrimSpace(r.TableName)
	r.Category = strings.TrimSpace(r.Category)

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
		result = multierror.Append(result, fmt.Errorf("%w: %s failed on %s", ErrInvalidBOMTable, fe.Namespace(), fe.Tag()))
	}

	return result.ErrorOrNil()
}

// Table returns the record the request writes, with its total cost.
func (r TableRequest) Table() BOMTable {
	return BOMTable{
		TableName: r.TableName,
		Items:     r.Items,
		TotalCost: TotalCost(r.Items),
		Category:  r.Category,
		ImageURL:  r.ImageURL,
	}
}
