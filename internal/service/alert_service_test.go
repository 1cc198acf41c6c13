package service

import (
	"context"
	"errors"
	"math"
	"net/smtp"
	"testing"
	"time"

	"github.com/infocomm/inventory-backend/internal/cache"
	"github.com/infocomm/inventory-backend/internal/config"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/notify"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/repo/mocks"
	"github.com/infocomm/inventory-backend/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	events []notify.LowStockEvent
	err    error
}

func (n *fakeNotifier) NotifyLowStock(_ context.Context, ev notify.LowStockEvent) error {
	n.events = append(n.events, ev)
	return n.err
}

// mapCache is a ProductCache kept in a map.
type mapCache struct {
	entries map[int64]models.Product
	gets    int
}

func (c *mapCache) GetProducts(_ context.Context, ids []int64) map[int64]models.Product {
	c.gets++
	out := map[int64]models.Product{}
	for _, id := range ids {
		if p, ok := c.entries[id]; ok {
			out[id] = p
		}
	}
	return out
}

func (c *mapCache) SetProducts(_ context.Context, products []models.Product) {
	for _, p := range products {
		c.entries[p.ID] = p
	}
}

func (c *mapCache) DeleteProducts(_ context.Context, ids ...int64) {
	for _, id := range ids {
		delete(c.entries, id)
	}
}

type alertFixture struct {
	alerts   *repo.InMemoryAlertRepository
	products *repo.InMemoryProductRepository
	users    *repo.InMemoryUserRepository
	notifier *fakeNotifier
	svc      *AlertService
	owner    models.User
}

func newAlertFixture(t *testing.T, productCache cache.ProductCache) *alertFixture {
	t.Helper()
	f := &alertFixture{
		alerts:   repo.NewInMemoryAlertRepository(),
		products: repo.NewInMemoryProductRepository(),
		users:    repo.NewInMemoryUserRepository(),
		notifier: &fakeNotifier{},
	}
	f.svc = NewAlertService(f.alerts, f.products, f.users, productCache, f.notifier, logger.NewDiscardLogger())
	f.svc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

	var err error
	f.owner, err = f.users.CreateUser(context.Background(), models.User{Email: "owner@infocomm.local", RoleID: models.RoleUser})
	require.NoError(t, err)
	return f
}

func (f *alertFixture) product(t *testing.T, model string, qty int) models.Product {
	t.Helper()
	p, err := f.products.Create(context.Background(), models.Product{Model: model, Quantity: qty})
	require.NoError(t, err)
	return p
}

func (f *alertFixture) alert(t *testing.T, productID int64, threshold int) models.Alert {
	t.Helper()
	a, err := f.svc.CreateAlert(context.Background(), models.Alert{ProductID: productID, UserID: f.owner.ID, Threshold: threshold, Message: "reorder"})
	require.NoError(t, err)
	return a
}

func TestAlertService_ListUserAlerts(t *testing.T) {
	ctx := context.Background()

	t.Run("user without alerts gets an empty list", func(t *testing.T) {
		f := newAlertFixture(t, nil)

		got, err := f.svc.ListUserAlerts(ctx, f.owner.ID)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("joins product and current stock", func(t *testing.T) {
		f := newAlertFixture(t, nil)
		phone := f.product(t, "Phone9", 4)
		tab := f.product(t, "Tab2", 11)
		a1 := f.alert(t, phone.ID, 5)
		a2 := f.alert(t, tab.ID, 2)

		got, err := f.svc.ListUserAlerts(ctx, f.owner.ID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, models.AlertProduct{Alert: a1, Product: phone, CurrentStock: 4}, got[0])
		assert.Equal(t, models.AlertProduct{Alert: a2, Product: tab, CurrentStock: 11}, got[1])
	})

	t.Run("deleted alerts are not listed", func(t *testing.T) {
		f := newAlertFixture(t, nil)
		phone := f.product(t, "Phone9", 4)
		a := f.alert(t, phone.ID, 5)
		_, err := f.svc.SoftDeleteAlert(ctx, a.ID)
		require.NoError(t, err)

		got, err := f.svc.ListUserAlerts(ctx, f.owner.ID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cached products skip the store", func(t *testing.T) {
		c := &mapCache{entries: map[int64]models.Product{}}
		f := newAlertFixture(t, c)
		phone := f.product(t, "Phone9", 4)
		f.alert(t, phone.ID, 5)

		_, err := f.svc.ListUserAlerts(ctx, f.owner.ID)
		require.NoError(t, err)
		assert.Contains(t, c.entries, phone.ID, "misses are written back")

		c.entries[phone.ID] = models.Product{ID: phone.ID, Model: "Phone9 (cached)", Quantity: 4}
		got, err := f.svc.ListUserAlerts(ctx, f.owner.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Phone9 (cached)", got[0].Product.Model)
	})
}

func TestAlertService_ListUserAlerts_MissingProductIsSkipped(t *testing.T) {
	ctx := context.Background()
	alerts := new(mocks.MockAlertRepository)
	products := new(mocks.MockProductRepository)

	alerts.On("GetActiveByUser", ctx, int64(1)).Return([]models.Alert{
		{ID: 1, ProductID: 10, UserID: 1},
		{ID: 2, ProductID: 11, UserID: 1},
		{ID: 3, ProductID: 10, UserID: 1},
	}, nil).Once()
	products.On("GetByIDs", ctx, []int64{10, 11}).Return([]models.Product{{ID: 10, Model: "Phone9", Quantity: 2}}, nil).Once()

	svc := NewAlertService(alerts, products, repo.NewInMemoryUserRepository(), nil, &fakeNotifier{}, logger.NewDiscardLogger())
	got, err := svc.ListUserAlerts(ctx, 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Alert.ID)
	assert.Equal(t, int64(3), got[1].Alert.ID)
	assert.Equal(t, 2, got[1].CurrentStock)
	products.AssertExpectations(t)
}

func TestAlertService_ListUserAlerts_StoreFailure(t *testing.T) {
	ctx := context.Background()
	alerts := new(mocks.MockAlertRepository)
	alerts.On("GetActiveByUser", ctx, int64(1)).Return(nil, errors.New("db error")).Once()

	svc := NewAlertService(alerts, new(mocks.MockProductRepository), repo.NewInMemoryUserRepository(), nil, &fakeNotifier{}, logger.NewDiscardLogger())
	_, err := svc.ListUserAlerts(ctx, 1)

	assert.ErrorContains(t, err, "db error")
}

func TestAlertService_CreateAlert(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the date", func(t *testing.T) {
		f := newAlertFixture(t, nil)
		phone := f.product(t, "Phone9", 4)

		a := f.alert(t, phone.ID, 5)

		assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), a.Date)
		assert.False(t, a.IsDeleted)
		assert.NotZero(t, a.ID)
	})

	tests := []struct {
		name  string
		alert func(f *alertFixture, productID int64) models.Alert
	}{
		{name: "negative threshold", alert: func(f *alertFixture, pid int64) models.Alert {
			return models.Alert{ProductID: pid, UserID: f.owner.ID, Threshold: -1}
		}},
		{name: "threshold beyond int32", alert: func(f *alertFixture, pid int64) models.Alert {
			return models.Alert{ProductID: pid, UserID: f.owner.ID, Threshold: math.MaxInt32 + 1}
		}},
		{name: "unknown product", alert: func(f *alertFixture, _ int64) models.Alert {
			return models.Alert{ProductID: 404, UserID: f.owner.ID, Threshold: 1}
		}},
		{name: "unknown user", alert: func(_ *alertFixture, pid int64) models.Alert {
			return models.Alert{ProductID: pid, UserID: 404, Threshold: 1}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAlertFixture(t, nil)
			phone := f.product(t, "Phone9", 4)

			_, err := f.svc.CreateAlert(ctx, tt.alert(f, phone.ID))

			var invalid *validation.AlertInformationInvalidError
			assert.ErrorAs(t, err, &invalid)
		})
	}

	t.Run("deleted product", func(t *testing.T) {
		f := newAlertFixture(t, nil)
		phone := f.product(t, "Phone9", 4)
		phone.IsDeleted = true
		_, err := f.products.Update(ctx, phone)
		require.NoError(t, err)

		_, err = f.svc.CreateAlert(ctx, models.Alert{ProductID: phone.ID, UserID: f.owner.ID, Threshold: 1})

		var invalid *validation.AlertInformationInvalidError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestAlertService_SoftDeleteAlert_Unknown(t *testing.T) {
	f := newAlertFixture(t, nil)

	_, err := f.svc.SoftDeleteAlert(context.Background(), 999)

	assert.ErrorIs(t, err, repo.ErrAlertNotFound)
}

func TestAlertService_LinkUser(t *testing.T) {
	ctx := context.Background()
	f := newAlertFixture(t, nil)
	phone := f.product(t, "Phone9", 4)
	a := f.alert(t, phone.ID, 5)
	_, err := f.users.CreateUser(ctx, models.User{Email: "buyer@infocomm.local"})
	require.NoError(t, err)

	au, err := f.svc.LinkUser(ctx, a.ID, "buyer@infocomm.local")
	require.NoError(t, err)
	assert.Equal(t, a.ID, au.AlertID)

	_, err = f.svc.LinkUser(ctx, a.ID, "nobody@infocomm.local")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)

	_, err = f.svc.LinkUser(ctx, 999, "buyer@infocomm.local")
	assert.ErrorIs(t, err, repo.ErrAlertNotFound)
}

func TestAlertService_CheckStock(t *testing.T) {
	ctx := context.Background()
	f := newAlertFixture(t, nil)
	phone := f.product(t, "Phone9", 10)
	low := f.alert(t, phone.ID, 5)
	f.alert(t, phone.ID, 2)
	_, err := f.users.CreateUser(ctx, models.User{Email: "buyer@infocomm.local"})
	require.NoError(t, err)
	_, err = f.svc.LinkUser(ctx, low.ID, "buyer@infocomm.local")
	require.NoError(t, err)
	_, err = f.svc.LinkUser(ctx, low.ID, "owner@infocomm.local")
	require.NoError(t, err)

	phone.Quantity = 3
	f.svc.CheckStock(ctx, phone)

	require.Len(t, f.notifier.events, 1)
	ev := f.notifier.events[0]
	assert.Equal(t, low.ID, ev.Alert.ID)
	assert.Equal(t, 3, ev.Product.Quantity)
	assert.Equal(t, []string{"owner@infocomm.local", "buyer@infocomm.local"}, ev.Recipients)
}

func TestAlertService_CheckStock_NotifierFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newAlertFixture(t, nil)
	f.notifier.err = errors.New("smtp down")
	phone := f.product(t, "Phone9", 10)
	f.alert(t, phone.ID, 5)

	phone.Quantity = 0
	assert.NotPanics(t, func() { f.svc.CheckStock(ctx, phone) })
	assert.Len(t, f.notifier.events, 1)
}

func TestAlertService_CheckStock_StoreFailure(t *testing.T) {
	ctx := context.Background()
	alerts := new(mocks.MockAlertRepository)
	alerts.On("GetActiveByProduct", ctx, int64(1)).Return(nil, errors.New("db error")).Once()
	n := &fakeNotifier{}

	svc := NewAlertService(alerts, new(mocks.MockProductRepository), repo.NewInMemoryUserRepository(), nil, n, logger.NewDiscardLogger())
	svc.CheckStock(ctx, models.Product{ID: 1})

	assert.Empty(t, n.events)
	alerts.AssertNotCalled(t, "GetUserEmails", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_SlowMailServer(t *testing.T) {
	ctx := context.Background()
	f := newAlertFixture(t, nil)

	release := make(chan struct{})
	sent := make(chan struct{}, 1)
	mailer := notify.NewSMTPNotifier(config.SMTPConfig{Server: "smtp.local", Port: "25"}, logger.NewDiscardLogger()).WithSendFunc(
		func(string, smtp.Auth, string, []string, []byte) error {
			<-release
			sent <- struct{}{}
			return nil
		})
	alerts := NewAlertService(f.alerts, f.products, f.users, nil, mailer, logger.NewDiscardLogger())

	phone := f.product(t, "Phone9", 10)
	a := f.alert(t, phone.ID, 5)
	_, err := alerts.LinkUser(ctx, a.ID, "owner@infocomm.local")
	require.NoError(t, err)

	products := newProductService(f.products, acceptAll())
	products.SetStockWatcher(alerts)

	done := make(chan error, 1)
	go func() {
		_, err := products.UpdateProduct(ctx, phone.ID, models.ProductPatch{Quantity: ptr(1)})
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("update waited for the mail server")
	}

	close(release)
	mailer.Wait()
	assert.Len(t, sent, 1)
}
