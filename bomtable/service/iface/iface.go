//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/bomtable/domain"
	"github.com/kindfood/erp-system/common"
)

type BOMTablesService interface {
	List(ctx context.Context) ([]domain.BOMTable, error)
	Get(ctx context.Context, id string) (*domain.BOMTable, error)
	Create(ctx context.Context, req domain.TableRequest, image *domain.Image, by common.UserRef) (*domain.BOMTable, error)
	Update(ctx context.Context, id string, req domain.TableRequest, image *domain.Image, by common.UserRef) (*domain.BOMTable, error)
	Delete(ctx context.Context, id string) error

	OpenDraft(ctx context.Context, uid, tableID string) (*domain.Draft, error)
	GetDraft(uid, draftID string) (*domain.Draft, error)
	EditDraft(uid, draftID string, edit domain.Edit) (*domain.Draft, error)
	SubmitDraft(ctx context.Context, uid, draftID string, image *domain.Image, by common.UserRef) (*domain.BOMTable, error)
	DiscardDraft(uid, draftID string)
}
