//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/sharedmaterial/domain"
)

type SharedMaterialsService interface {
	List(ctx context.Context) ([]domain.Material, error)
	Get(ctx context.Context, id string) (*domain.Material, error)
	Create(ctx context.Context, req domain.MaterialRequest, by common.UserRef) (*domain.Material, error)
	Update(ctx context.Context, id string, req domain.MaterialRequest, by common.UserRef) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]domain.HistoryEntry, error)
}
