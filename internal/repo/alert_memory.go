package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/infocomm/inventory-backend/internal/models"
)

type InMemoryAlertRepository struct {
	mu         sync.RWMutex
	alerts     []models.Alert
	alertUsers []models.AlertUser
	nextID     int64
}

func NewInMemoryAlertRepository() *InMemoryAlertRepository {
	return &InMemoryAlertRepository{
		alerts:     []models.Alert{},
		alertUsers: []models.AlertUser{},
		nextID:     1,
	}
}

func (r *InMemoryAlertRepository) Create(_ context.Context, a models.Alert) (models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.alerts = append(r.alerts, a)
	return a, nil
}

func (r *InMemoryAlertRepository) GetByID(_ context.Context, id int64) (models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Alert{}, ErrAlertNotFound
}

func (r *InMemoryAlertRepository) Update(_ context.Context, alert models.Alert) (models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.alerts {
		if a.ID == alert.ID {
			r.alerts[i] = alert
			return alert, nil
		}
	}
	return models.Alert{}, ErrAlertNotFound
}

func (r *InMemoryAlertRepository) GetActive(_ context.Context) ([]models.Alert, error) {
	active := r.filter(func(models.Alert) bool { return true })
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Date.Equal(active[j].Date) {
			return active[i].ID > active[j].ID
		}
		return active[i].Date.After(active[j].Date)
	})
	return active, nil
}

func (r *InMemoryAlertRepository) GetActiveByUser(_ context.Context, userID int64) ([]models.Alert, error) {
	return r.filter(func(a models.Alert) bool { return a.UserID == userID }), nil
}

func (r *InMemoryAlertRepository) GetActiveByProduct(_ context.Context, productID int64) ([]models.Alert, error) {
	return r.filter(func(a models.Alert) bool { return a.ProductID == productID }), nil
}

func (r *InMemoryAlertRepository) AddUser(_ context.Context, au models.AlertUser) (models.AlertUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.alertUsers {
		if existing.AlertID == au.AlertID && existing.UserEmail == au.UserEmail {
			return models.AlertUser{}, ErrDuplicatedValueUnique
		}
	}
	au.ID = int64(len(r.alertUsers) + 1)
	r.alertUsers = append(r.alertUsers, au)
	return au, nil
}

func (r *InMemoryAlertRepository) GetUserEmails(_ context.Context, alertID int64) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emails := []string{}
	for _, au := range r.alertUsers {
		if au.AlertID == alertID {
			emails = append(emails, au.UserEmail)
		}
	}
	return emails, nil
}

func (r *InMemoryAlertRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = []models.Alert{}
	r.alertUsers = []models.AlertUser{}
	r.nextID = 1
}

// filter returns the non-deleted alerts matching keep, in creation order.
func (r *InMemoryAlertRepository) filter(keep func(models.Alert) bool) []models.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Alert{}
	for _, a := range r.alerts {
		if !a.IsDeleted && keep(a) {
			out = append(out, a)
		}
	}
	return out
}
