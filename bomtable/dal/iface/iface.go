//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/bomtable/domain"
	"github.com/kindfood/erp-system/common"
)

type BOMTables interface {
	NewID(ctx context.Context) string
	List(ctx context.Context) ([]domain.BOMTable, error)
	Get(ctx context.Context, id string) (*domain.BOMTable, error)
	Create(ctx context.Context, id string, table domain.BOMTable, by common.UserRef) (*domain.BOMTable, error)
	Update(ctx context.Context, id string, table domain.BOMTable, by common.UserRef) (*domain.BOMTable, error)
	Delete(ctx context.Context, id string) error
}
