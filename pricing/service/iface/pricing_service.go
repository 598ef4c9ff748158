//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/pricing/domain"
)

type PricingService interface {
	List(ctx context.Context) ([]domain.Scheme, error)
	Get(ctx context.Context, id string) (*domain.Scheme, error)
	Save(ctx context.Context, req domain.SchemeRequest, by common.UserRef) (*domain.Scheme, error)
	Update(ctx context.Context, id string, req domain.SchemeRequest) (*domain.Scheme, error)
	Delete(ctx context.Context, id string) error

	Apply(ctx context.Context, uid, id string) (*domain.WorkingSet, error)
	Current(ctx context.Context, uid string) (string, error)
	SaveCurrent(ctx context.Context, uid string, ws domain.WorkingSet) (*domain.WorkingSet, error)
	Calculate(items []domain.PricedItem) []domain.PricedItem
}
