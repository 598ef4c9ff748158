package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/sharedmaterial/dal/mocks"
	"github.com/kindfood/erp-system/sharedmaterial/domain"
)

type materialsFields struct {
	materialsDal *mocks.SharedMaterials
}

func TestSharedMaterialsService_Create(t *testing.T) {
	ctx := context.Background()

	var (
		by       = common.UserRef{UID: "u1", DisplayName: "Amy"}
		req      = domain.MaterialRequest{Name: " 麵粉 ", PurchaseUnitCost: common.Ptr(100), ProductUnit: common.Ptr(4)}
		created  = &domain.Material{ID: "m1", Name: "麵粉", UnitCost: "25.00"}
		testErr  = errors.New("test error")
		expected = domain.Material{
			Name:             "麵粉",
			PurchaseUnitCost: common.Ptr(100),
			ProductUnit:      common.Ptr(4),
			UnitCost:         "25.00",
		}
	)

	tests := []struct {
		name    string
		on      func(*materialsFields)
		want    *domain.Material
		wantErr error
	}{
		{
			name: "success - name trimmed and unit cost derived",
			on: func(f *materialsFields) {
				f.materialsDal.On("Create", ctx, expected, by).Return(created, nil)
			},
			want: created,
		},
		{
			name: "error - dal failure",
			on: func(f *materialsFields) {
				f.materialsDal.On("Create", ctx, mock.Anything, by).Return(nil, testErr)
			},
			wantErr: testErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &materialsFields{materialsDal: mocks.NewSharedMaterials(t)}
			tt.on(f)

			s := &SharedMaterialsService{
				loggerProvider: logger.FromContext,
				materialsDal:   f.materialsDal,
			}

			got, err := s.Create(ctx, req, by)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSharedMaterialsService_Update(t *testing.T) {
	ctx := context.Background()
	by := common.UserRef{UID: "u1"}

	t.Run("empty id", func(t *testing.T) {
		s := &SharedMaterialsService{loggerProvider: logger.FromContext, materialsDal: mocks.NewSharedMaterials(t)}

		_, err := s.Update(ctx, "", domain.MaterialRequest{}, by)
		assert.ErrorIs(t, err, domain.ErrInvalidMaterialID)
	})

	t.Run("not found passes through", func(t *testing.T) {
		dal := mocks.NewSharedMaterials(t)
		dal.On("Update", ctx, "m1", mock.Anything, by).Return(nil, domain.ErrMaterialNotFound("m1"))

		s := &SharedMaterialsService{loggerProvider: logger.FromContext, materialsDal: dal}

		_, err := s.Update(ctx, "m1", domain.MaterialRequest{Name: "x", PurchaseUnitCost: common.Ptr(1), ProductUnit: common.Ptr(1)}, by)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("success", func(t *testing.T) {
		dal := mocks.NewSharedMaterials(t)
		dal.On("Update", ctx, "m1", domain.Material{
			Name:             "糖",
			PurchaseUnitCost: common.Ptr(90),
			ProductUnit:      common.Ptr(3),
			UnitCost:         "30.00",
		}, by).Return(&domain.Material{ID: "m1", UnitCost: "30.00"}, nil)

		s := &SharedMaterialsService{loggerProvider: logger.FromContext, materialsDal: dal}

		got, err := s.Update(ctx, "m1", domain.MaterialRequest{Name: "糖", PurchaseUnitCost: common.Ptr(90), ProductUnit: common.Ptr(3)}, by)
		assert.NoError(t, err)
		assert.Equal(t, "30.00", got.UnitCost)
	})
}
