package dal

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/pricing/domain"
)

func TestPricingSchemesFirestore_Lifecycle(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("requires the firestore emulator")
	}

	ctx := context.Background()

	fs, err := firestore.NewClient(ctx, common.TestProjectID)
	require.NoError(t, err)

	defer fs.Close()

	d := NewPricingSchemesFirestoreWithClient(func(context.Context) *firestore.Client { return fs })
	by := common.UserRef{UID: "u1", DisplayName: "Amy"}

	created, err := d.Create(ctx, domain.Scheme{
		Name: "Q1",
		Note: "first",
		PricingData: []domain.PricedItem{
			{ID: "A", TableName: "鳳梨酥", TotalCost: common.Ptr(10), DealerPrice: common.Ptr(15)},
		},
	}, by)
	require.NoError(t, err)
	assert.Equal(t, "Q1", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, created.PricingData, 1)
	assert.Equal(t, common.Ptr(15), created.PricingData[0].DealerPrice)
	assert.Nil(t, created.PricingData[0].SpecialPrice)

	updated, err := d.Update(ctx, created.ID, "Q1b", "")
	require.NoError(t, err)
	assert.Equal(t, "Q1b", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Len(t, updated.PricingData, 1)

	_, err = d.Update(ctx, "missing-scheme", "x", "")
	assert.True(t, domain.IsNotFound(err))

	schemes, err := d.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, schemes)

	require.NoError(t, d.Delete(ctx, created.ID))

	_, err = d.Get(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
}
