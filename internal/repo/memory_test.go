package repo

import (
	"context"
	"testing"
	"time"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()

	a, err := r.Create(ctx, models.Product{Model: "Phone9", Quantity: 3})
	require.NoError(t, err)
	b, err := r.Create(ctx, models.Product{Model: "Tab3", Quantity: 1})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	b.IsDeleted = true
	_, err = r.Update(ctx, b)
	require.NoError(t, err)

	active, err := r.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, a.ID, active[0].ID)

	// deleted products stay reachable by id
	got, err := r.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	many, err := r.GetByIDs(ctx, []int64{a.ID, b.ID, 999})
	require.NoError(t, err)
	assert.Len(t, many, 2)

	_, err = r.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = r.Update(ctx, models.Product{ID: 999})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestInMemoryAlertRepository(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryAlertRepository()

	a1, err := r.Create(ctx, models.Alert{Threshold: 5, ProductID: 1, UserID: 1})
	require.NoError(t, err)
	a2, err := r.Create(ctx, models.Alert{Threshold: 2, ProductID: 2, UserID: 1})
	require.NoError(t, err)
	_, err = r.Create(ctx, models.Alert{Threshold: 2, ProductID: 1, UserID: 2})
	require.NoError(t, err)

	a2.IsDeleted = true
	_, err = r.Update(ctx, a2)
	require.NoError(t, err)

	byUser, err := r.GetActiveByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, a1.ID, byUser[0].ID)

	byProduct, err := r.GetActiveByProduct(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	_, err = r.AddUser(ctx, models.AlertUser{AlertID: a1.ID, UserEmail: "buyer@infocomm.local"})
	require.NoError(t, err)
	_, err = r.AddUser(ctx, models.AlertUser{AlertID: a1.ID, UserEmail: "buyer@infocomm.local"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	emails, err := r.GetUserEmails(ctx, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"buyer@infocomm.local"}, emails)

	_, err = r.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestInMemoryMovementRepository(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryMovementRepository()
	start := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

	for i, delta := range []int{10, -3, 5, -1} {
		_, err := r.Log(ctx, models.StockMovement{ProductID: 1, Delta: delta, CreatedAt: start.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}
	_, err := r.Log(ctx, models.StockMovement{ProductID: 2, Delta: 1, CreatedAt: start})
	require.NoError(t, err)

	tests := []struct {
		name   string
		mf     MovementFilter
		deltas []int
		total  int
	}{
		{"all", MovementFilter{}, []int{-1, 5, -3, 10}, 4},
		{"since", MovementFilter{Since: ptrTo(start.Add(2 * time.Hour))}, []int{-1, 5}, 2},
		{"until", MovementFilter{Until: ptrTo(start.Add(time.Hour))}, []int{-3, 10}, 2},
		{"page", MovementFilter{Offset: ptrTo(1), Limit: ptrTo(2)}, []int{5, -3}, 4},
		{"offset past end", MovementFilter{Offset: ptrTo(10)}, []int{}, 4},
		{"count only", MovementFilter{Limit: ptrTo(0)}, []int{}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.GetByProductID(ctx, 1, tt.mf)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)

			deltas := []int{}
			for _, m := range got {
				deltas = append(deltas, m.Delta)
			}
			assert.Equal(t, tt.deltas, deltas)
		})
	}
}

func ptrTo[T any](v T) *T { return &v }
