//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/analysis/domain"
	"github.com/kindfood/erp-system/common"
)

type Analyses interface {
	List(ctx context.Context) ([]domain.Analysis, error)
	Create(ctx context.Context, req domain.AnalysisRequest, by common.UserRef) (*domain.Analysis, error)
	Delete(ctx context.Context, id string) error
}
