package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/infocomm/inventory-backend/internal/cache"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/notify"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/validation"
)

type AlertService struct {
	alerts   repo.AlertRepository
	products repo.ProductRepository
	users    repo.UserRepository
	loader   productLoader
	notifier notify.Notifier
	logger   logger.Logger
	now      func() time.Time
}

func NewAlertService(
	alerts repo.AlertRepository,
	products repo.ProductRepository,
	users repo.UserRepository,
	productCache cache.ProductCache,
	notifier notify.Notifier,
	log logger.Logger,
) *AlertService {
	if productCache == nil {
		productCache = cache.NopProductCache{}
	}
	return &AlertService{
		alerts:   alerts,
		products: products,
		users:    users,
		loader:   productLoader{products: products, cache: productCache},
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

// ListUserAlerts returns the active alerts of a user, each joined with its
// product and current stock. Alerts whose product cannot be found are skipped.
func (s *AlertService) ListUserAlerts(ctx context.Context, userID int64) ([]models.AlertProduct, error) {
	alerts, err := s.alerts.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing alerts of user %d: %w", userID, err)
	}

	result := make([]models.AlertProduct, 0, len(alerts))
	if len(alerts) == 0 {
		return result, nil
	}

	ids := make([]int64, len(alerts))
	for i, a := range alerts {
		ids[i] = a.ProductID
	}
	products, err := s.loader.load(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, a := range alerts {
		p, ok := products[a.ProductID]
		if !ok {
			s.logger.Warnf("alert %d references missing product %d, skipped", a.ID, a.ProductID)
			continue
		}
		result = append(result, models.AlertProduct{Alert: a, Product: p, CurrentStock: p.Quantity})
	}
	return result, nil
}

// CreateAlert stores a new alert on an active product for an existing user.
func (s *AlertService) CreateAlert(ctx context.Context, a models.Alert) (models.Alert, error) {
	if a.Threshold < 0 {
		return models.Alert{}, &validation.AlertInformationInvalidError{Message: "threshold cannot be negative"}
	}
	if a.Threshold > math.MaxInt32 {
		return models.Alert{}, &validation.AlertInformationInvalidError{Message: fmt.Sprintf("threshold cannot exceed %d", math.MaxInt32)}
	}

	p, err := s.products.GetByID(ctx, a.ProductID)
	if errors.Is(err, repo.ErrProductNotFound) || (err == nil && p.IsDeleted) {
		return models.Alert{}, &validation.AlertInformationInvalidError{Message: fmt.Sprintf("product %d does not exist", a.ProductID)}
	}
	if err != nil {
		return models.Alert{}, fmt.Errorf("loading product %d: %w", a.ProductID, err)
	}

	if _, err := s.users.GetByID(ctx, a.UserID); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return models.Alert{}, &validation.AlertInformationInvalidError{Message: fmt.Sprintf("user %d does not exist", a.UserID)}
		}
		return models.Alert{}, fmt.Errorf("loading user %d: %w", a.UserID, err)
	}

	if a.Date.IsZero() {
		a.Date = s.now().UTC()
	}
	a.IsDeleted = false

	created, err := s.alerts.Create(ctx, a)
	if err != nil {
		return models.Alert{}, fmt.Errorf("creating alert: %w", err)
	}
	s.logger.Infof("alert %d created on product %d", created.ID, created.ProductID)
	return created, nil
}

func (s *AlertService) SoftDeleteAlert(ctx context.Context, id int64) (models.Alert, error) {
	a, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return models.Alert{}, err
	}

	a.IsDeleted = true
	updated, err := s.alerts.Update(ctx, a)
	if err != nil {
		return models.Alert{}, fmt.Errorf("deleting alert %d: %w", id, err)
	}
	s.logger.Infof("alert %d deleted", id)
	return updated, nil
}

// LinkUser subscribes an existing user to an alert's notifications.
func (s *AlertService) LinkUser(ctx context.Context, alertID int64, email string) (models.AlertUser, error) {
	if _, err := s.alerts.GetByID(ctx, alertID); err != nil {
		return models.AlertUser{}, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		return models.AlertUser{}, err
	}

	au, err := s.alerts.AddUser(ctx, models.AlertUser{AlertID: alertID, UserEmail: email})
	if err != nil {
		return models.AlertUser{}, fmt.Errorf("linking %s to alert %d: %w", email, alertID, err)
	}
	return au, nil
}

// CheckStock notifies the recipients of every active alert the product's
// quantity has fallen below. Failures are logged only.
func (s *AlertService) CheckStock(ctx context.Context, product models.Product) {
	alerts, err := s.alerts.GetActiveByProduct(ctx, product.ID)
	if err != nil {
		s.logger.Errorf(err, "low stock check for product %d", product.ID)
		return
	}

	for _, a := range alerts {
		if !a.Triggered(product.Quantity) {
			continue
		}

		ev := notify.LowStockEvent{
			Alert:      a,
			Product:    product,
			Recipients: s.recipients(ctx, a),
			At:         s.now(),
		}
		if err := s.notifier.NotifyLowStock(ctx, ev); err != nil {
			s.logger.Errorf(err, "low stock notification for alert %d", a.ID)
		}
	}
}

// recipients returns the alert owner's email followed by the linked users, without duplicates.
func (s *AlertService) recipients(ctx context.Context, a models.Alert) []string {
	var emails []string
	seen := map[string]struct{}{}
	add := func(email string) {
		if _, ok := seen[email]; ok || email == "" {
			return
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	if owner, err := s.users.GetByID(ctx, a.UserID); err != nil {
		s.logger.Errorf(err, "resolving owner %d of alert %d", a.UserID, a.ID)
	} else {
		add(owner.Email)
	}

	linked, err := s.alerts.GetUserEmails(ctx, a.ID)
	if err != nil {
		s.logger.Errorf(err, "resolving users linked to alert %d", a.ID)
	}
	for _, email := range linked {
		add(email)
	}
	return emails
}
