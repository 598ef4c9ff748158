//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/category/domain"
)

type Categories interface {
	List(ctx context.Context) ([]domain.Category, error)
}
