package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	blobMocks "github.com/kindfood/erp-system/blobstore/mocks"
	"github.com/kindfood/erp-system/bomtable/dal/mocks"
	"github.com/kindfood/erp-system/bomtable/domain"
	categoryMocks "github.com/kindfood/erp-system/category/dal/mocks"
	category "github.com/kindfood/erp-system/category/domain"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/logger"
	materialsMocks "github.com/kindfood/erp-system/sharedmaterial/dal/mocks"
	material "github.com/kindfood/erp-system/sharedmaterial/domain"
)

type tablesFields struct {
	tablesDal     *mocks.BOMTables
	materialsDal  *materialsMocks.SharedMaterials
	categoriesDal *categoryMocks.Categories
	uploader      *blobMocks.Uploader
}

func newTablesService(t *testing.T) (*BOMTablesService, *tablesFields) {
	f := &tablesFields{
		tablesDal:     mocks.NewBOMTables(t),
		materialsDal:  materialsMocks.NewSharedMaterials(t),
		categoriesDal: categoryMocks.NewCategories(t),
		uploader:      blobMocks.NewUploader(t),
	}

	return &BOMTablesService{
		loggerProvider: logger.FromContext,
		tablesDal:      f.tablesDal,
		materialsDal:   f.materialsDal,
		categoriesDal:  f.categoriesDal,
		uploader:       f.uploader,
		drafts:         NewDraftStore(time.Hour),
		validate:       validator.New(),
	}, f
}

var (
	by      = common.UserRef{UID: "u1", DisplayName: "Amy", Email: "amy@kindfood.tw"}
	testErr = errors.New("test error")
)

func validRequest() domain.TableRequest {
	return domain.TableRequest{
		TableName: "吐司",
		Items:     []domain.Item{{Name: "麵粉", Quantity: common.Ptr(2), UnitCost: common.Ptr(25)}},
		Category:  "麵包",
		ImageURL:  "https://old",
	}
}

func TestBOMTablesService_Update(t *testing.T) {
	ctx := context.Background()
	image := &domain.Image{ContentType: "image/png", Body: strings.NewReader("png")}

	tests := []struct {
		name    string
		image   *domain.Image
		on      func(*tablesFields)
		wantErr error
	}{
		{
			name:  "image uploaded first and its URL written",
			image: image,
			on: func(f *tablesFields) {
				f.tablesDal.On("Get", ctx, "t1").Return(&domain.BOMTable{ID: "t1"}, nil)
				f.uploader.On("Upload", ctx, "bom-images/t1", "image/png", image.Body).Return("https://new", nil)
				f.tablesDal.On("Update", ctx, "t1", mock.MatchedBy(func(t domain.BOMTable) bool {
					return t.ImageURL == "https://new" && t.TotalCost == 50
				}), by).Return(&domain.BOMTable{ID: "t1"}, nil)
			},
		},
		{
			name: "no image keeps the current URL",
			on: func(f *tablesFields) {
				f.tablesDal.On("Get", ctx, "t1").Return(&domain.BOMTable{ID: "t1"}, nil)
				f.tablesDal.On("Update", ctx, "t1", mock.MatchedBy(func(t domain.BOMTable) bool {
					return t.ImageURL == "https://old"
				}), by).Return(&domain.BOMTable{ID: "t1"}, nil)
			},
		},
		{
			name:  "upload failure aborts before the write",
			image: image,
			on: func(f *tablesFields) {
				f.tablesDal.On("Get", ctx, "t1").Return(&domain.BOMTable{ID: "t1"}, nil)
				f.uploader.On("Upload", ctx, "bom-images/t1", "image/png", image.Body).Return("", testErr)
			},
			wantErr: testErr,
		},
		{
			name: "missing table",
			on: func(f *tablesFields) {
				f.tablesDal.On("Get", ctx, "t1").Return(nil, domain.ErrBOMTableNotFound("t1"))
			},
			wantErr: &domain.NotFoundError{ID: "t1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newTablesService(t)
			tt.on(f)

			_, err := s.Update(ctx, "t1", validRequest(), tt.image, by)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestBOMTablesService_UpdateRejectsInvalid(t *testing.T) {
	s, _ := newTablesService(t)

	_, err := s.Update(context.Background(), "t1", domain.TableRequest{TableName: "x"}, nil, by)
	assert.ErrorIs(t, err, domain.ErrInvalidBOMTable)
}

func TestBOMTablesService_Create(t *testing.T) {
	ctx := context.Background()
	s, f := newTablesService(t)
	image := &domain.Image{ContentType: "image/jpeg", Body: strings.NewReader("jpg")}

	f.tablesDal.On("NewID", ctx).Return("new-id")
	f.uploader.On("Upload", ctx, "bom-images/new-id", "image/jpeg", image.Body).Return("https://img", nil)
	f.tablesDal.On("Create", ctx, "new-id", mock.MatchedBy(func(t domain.BOMTable) bool {
		return t.ImageURL == "https://img" && t.TableName == "吐司"
	}), by).Return(&domain.BOMTable{ID: "new-id"}, nil)

	got, err := s.Create(ctx, validRequest(), image, by)
	require.NoError(t, err)
	assert.Equal(t, "new-id", got.ID)
}

func TestBOMTablesService_Drafts(t *testing.T) {
	ctx := context.Background()
	s, f := newTablesService(t)

	f.tablesDal.On("Get", mock.Anything, "t1").Return(&domain.BOMTable{
		ID:        "t1",
		TableName: "吐司",
		Items:     []domain.Item{{IsShared: true, Name: "舊麵粉", SharedMaterialID: "m1", Quantity: common.Ptr(2), UnitCost: common.Ptr(20)}},
	}, nil)
	f.materialsDal.On("List", mock.Anything).Return([]material.Material{
		{ID: "m1", Name: "麵粉", UnitCost: "25.00"},
		{ID: "m2", Name: "糖", UnitCost: "30.00"},
	}, nil)
	f.categoriesDal.On("List", mock.Anything).Return([]category.Category{{ID: "c1", Name: "麵包"}}, nil)

	d, err := s.OpenDraft(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "麵粉", d.Items[0].Name)
	assert.Equal(t, common.Ptr(20), d.Items[0].UnitCost)
	assert.Len(t, d.Materials, 2)
	assert.Len(t, d.Categories, 1)

	d, err = s.EditDraft("u1", d.ID, domain.Edit{Op: domain.OpAddItem})
	require.NoError(t, err)

	d, err = s.EditDraft("u1", d.ID, domain.Edit{Op: domain.OpSetField, Index: 1, Field: domain.FieldIsShared, Value: true})
	require.NoError(t, err)

	d, err = s.EditDraft("u1", d.ID, domain.Edit{Op: domain.OpSetField, Index: 1, Field: domain.FieldName, Value: "糖"})
	require.NoError(t, err)
	assert.Equal(t, common.Ptr(30), d.Items[1].UnitCost)
	assert.Equal(t, "m2", d.Items[1].SharedMaterialID)

	_, err = s.EditDraft("u1", d.ID, domain.Edit{Op: domain.OpSetField, Index: 1, Field: domain.FieldUnitCost, Value: 1.0})
	assert.ErrorIs(t, err, domain.ErrReadOnlyField)

	// failed submit keeps the draft
	f.tablesDal.On("Update", mock.Anything, "t1", mock.Anything, by).Return(nil, testErr).Once()

	_, err = s.SubmitDraft(ctx, "u1", d.ID, nil, by)
	assert.ErrorIs(t, err, testErr)

	kept, err := s.GetDraft("u1", d.ID)
	require.NoError(t, err)
	assert.Len(t, kept.Items, 2)

	f.tablesDal.On("Update", mock.Anything, "t1", mock.MatchedBy(func(t domain.BOMTable) bool {
		return len(t.Items) == 2 && t.TotalCost == 40
	}), by).Return(&domain.BOMTable{ID: "t1"}, nil).Once()

	_, err = s.SubmitDraft(ctx, "u1", d.ID, nil, by)
	require.NoError(t, err)

	_, err = s.GetDraft("u1", d.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestBOMTablesService_OpenDraftMissingTable(t *testing.T) {
	s, f := newTablesService(t)

	f.tablesDal.On("Get", mock.Anything, "gone").Return(nil, domain.ErrBOMTableNotFound("gone"))
	f.materialsDal.On("List", mock.Anything).Return([]material.Material{}, nil).Maybe()
	f.categoriesDal.On("List", mock.Anything).Return([]category.Category{}, nil).Maybe()

	_, err := s.OpenDraft(context.Background(), "u1", "gone")
	assert.True(t, domain.IsNotFound(err))
}
