//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/pricing/domain"
)

type PricingSchemes interface {
	List(ctx context.Context) ([]domain.Scheme, error)
	Get(ctx context.Context, id string) (*domain.Scheme, error)
	Create(ctx context.Context, scheme domain.Scheme, by common.UserRef) (*domain.Scheme, error)
	Update(ctx context.Context, id, name, note string) (*domain.Scheme, error)
	Delete(ctx context.Context, id string) error
}
