package mongo_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	mongorepo "github.com/samandr77/restaurant-erp/internal/billing/repository/mongo"
	"github.com/samandr77/restaurant-erp/internal/entity"
	"github.com/samandr77/restaurant-erp/pkg/mongo"
)

func TestRepository_CRUD(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	want := entity.Bill{
		CustomerID: "cust-" + uuid.Must(uuid.NewV4()).String(),
		Total:      99.95,
		CreatedAt:  &now,
		Items:      []entity.Item{{"name": "bun cha", "qty": float64(1), "price": 99.95}},
	}

	created, err := repo.CreateBill(ctx, want)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	want.ID = created.ID
	require.Equal(t, want, created)

	got, err := repo.Bill(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)

	total := 50.0
	updated, err := repo.UpdateBill(ctx, created.ID, entity.BillPatch{Total: &total})
	require.NoError(t, err)

	want.Total = 50
	require.Equal(t, want, updated)

	err = repo.DeleteBill(ctx, created.ID)
	require.NoError(t, err)

	_, err = repo.Bill(ctx, created.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.DeleteBill(ctx, created.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = repo.UpdateBill(ctx, created.ID, entity.BillPatch{Total: &total})
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_NestedItems(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	items := []entity.Item{
		{"name": "pho", "mods": map[string]any{"spicy": true, "extra": []any{"lime", "basil"}}},
	}

	created, err := repo.CreateBill(ctx, entity.Bill{CustomerID: "c1", Total: 8, Items: items})
	require.NoError(t, err)

	got, err := repo.Bill(ctx, created.ID)
	require.NoError(t, err)

	b, err := json.Marshal(got.Items)
	require.NoError(t, err)
	require.JSONEq(t, `[{"name": "pho", "mods": {"spicy": true, "extra": ["lime", "basil"]}}]`, string(b))

	// Sub-documents decode as maps, not ordered bson.D slices.
	mods, ok := got.Items[0]["mods"].(bson.M)
	require.True(t, ok, "mods decoded as %T", got.Items[0]["mods"])
	require.Equal(t, true, mods["spicy"])
}

func TestRepository_UniqueIDs(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	seen := make(map[string]struct{})

	for range 5 {
		b, err := repo.CreateBill(ctx, entity.Bill{CustomerID: "c", Total: 1, Items: []entity.Item{}})
		require.NoError(t, err)

		_, dup := seen[b.ID]
		require.False(t, dup)

		seen[b.ID] = struct{}{}
	}

	bills, err := repo.Bills(ctx, entity.BillFilter{})
	require.NoError(t, err)
	require.Len(t, bills, 5)
}

func TestRepository_Bills_Filter(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	jan := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	for _, b := range []entity.Bill{
		{CustomerID: "a", Total: 1, CreatedAt: &jan, Items: []entity.Item{}},
		{CustomerID: "a", Total: 2, CreatedAt: &feb, Items: []entity.Item{}},
		{CustomerID: "b", Total: 3, CreatedAt: &feb, Items: []entity.Item{}},
	} {
		_, err := repo.CreateBill(ctx, b)
		require.NoError(t, err)
	}

	bills, err := repo.Bills(ctx, entity.BillFilter{CustomerID: "a"})
	require.NoError(t, err)
	require.Len(t, bills, 2)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	bills, err = repo.Bills(ctx, entity.BillFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, bills, 2)

	bills, err = repo.Bills(ctx, entity.BillFilter{CustomerID: "a", To: &from})
	require.NoError(t, err)
	require.Len(t, bills, 1)
	require.InDelta(t, 1.0, bills[0].Total, 0)
}

func TestRepository_MalformedID(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)

	_, err := repo.Bill(context.Background(), "not-an-object-id")
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = repo.DeleteBill(context.Background(), "not-an-object-id")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func newRepository(t *testing.T) *mongorepo.Repository {
	t.Helper()

	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL is not set")
	}

	db, err := mongo.Connect(context.Background(), url, "billing_test_"+uuid.Must(uuid.NewV4()).String()[:8])
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = mongo.Disconnect(context.Background(), db)
	})

	return mongorepo.New(db)
}
