package dal

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/bomtable/domain"
	"github.com/kindfood/erp-system/common"
)

func TestBOMTablesFirestore_Lifecycle(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("requires the firestore emulator")
	}

	ctx := context.Background()

	fs, err := firestore.NewClient(ctx, common.TestProjectID)
	require.NoError(t, err)

	defer fs.Close()

	d := NewBOMTablesFirestoreWithClient(func(context.Context) *firestore.Client { return fs })
	by := common.UserRef{UID: "u1", DisplayName: "Amy", Email: "amy@kindfood.tw"}

	id := d.NewID(ctx)
	require.NotEmpty(t, id)

	created, err := d.Create(ctx, id, domain.TableRequest{
		TableName: "吐司",
		Items:     []domain.Item{{Name: "麵粉", Quantity: common.Ptr(2), UnitCost: common.Ptr(25), IsShared: true, SharedMaterialID: "m1"}},
	}.Table(), by)
	require.NoError(t, err)
	assert.Equal(t, 50.0, created.TotalCost)
	assert.Equal(t, &by, created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := d.Update(ctx, id, domain.TableRequest{
		TableName: "全麥吐司",
		Items:     []domain.Item{{Name: "水", Quantity: common.Ptr(1)}},
		Category:  "麵包",
	}.Table(), by)
	require.NoError(t, err)
	assert.Equal(t, "全麥吐司", updated.TableName)
	assert.Equal(t, 0.0, updated.TotalCost)
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, d.Delete(ctx, id))

	_, err = d.Get(ctx, id)
	assert.True(t, domain.IsNotFound(err))

	_, err = d.Update(ctx, id, domain.BOMTable{}, by)
	assert.True(t, domain.IsNotFound(err))
}
