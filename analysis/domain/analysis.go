package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/slice"
	"github.com/kindfood/erp-system/times"
)

var (
	ErrInvalidAnalysisID = errors.New("invalid analysis ID")
	ErrInvalidAnalysis   = errors.New("invalid analysis")
)

// Stats are the figures computed from an uploaded order spreadsheet.
type Stats struct {
	TotalOrders   *float64 `json:"totalOrders" firestore:"totalOrders" validate:"required,gte=0"`
	OrderCostRate *float64 `json:"orderCostRate" firestore:"orderCostRate" validate:"required"`
}

type Analysis struct {
	ID                string          `json:"id"`
	FileName          string          `json:"fileName"`
	Stats             Stats           `json:"stats"`
	CreatedBy         *common.UserRef `json:"createdBy,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedAtText     string          `json:"createdAtText"`
	OrderCostRateText string          `json:"orderCostRateText"`
}

// RateText renders a cost rate stored as a fraction, 0.2534 becoming "25.34%".
func RateText(rate *float64) string {
	if rate == nil {
		return times.NotAvailable
	}

	return common.Fixed2(*rate*100) + "%"
}

func FromData(id string, data map[string]interface{}) Analysis {
	a := Analysis{ID: id}

	a.FileName, _ = data["fileName"].(string)

	if stats, ok := data["stats"].(map[string]interface{}); ok {
		a.Stats.TotalOrders = common.Number(stats["totalOrders"])
		a.Stats.OrderCostRate = common.Number(stats["orderCostRate"])
	}

	if v, ok := data["createdAt"].(time.Time); ok {
		a.CreatedAt = v
	}

	if by, ok := data["createdBy"].(map[string]interface{}); ok {
		a.CreatedBy = &common.UserRef{}
		a.CreatedBy.UID, _ = by["uid"].(string)
		a.CreatedBy.DisplayName, _ = by["displayName"].(string)
		a.CreatedBy.Email, _ = by["email"].(string)
	}

	a.CreatedAtText = times.FormatTaipei(a.CreatedAt)
	a.OrderCostRateText = RateText(a.Stats.OrderCostRate)

	return a
}

func (a Analysis) Matches(search string) bool {
	return slice.ContainsFold(search, a.FileName, a.CreatedAtText, a.OrderCostRateText)
}

type AnalysisRequest struct {
	FileName string `json:"fileName" validate:"required"`
	Stats    Stats  `json:"stats"`
}

func (r *AnalysisRequest) Validate(v *validator.Validate) error {
	r.FileName = strings.TrimSpace(r.FileName)

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
		result = multierror.Append(result, fmt.Errorf("%w: %s failed on %s", ErrInvalidAnalysis, fe.Namespace(), fe.Tag()))
	}

	return result.ErrorOrNil()
}
