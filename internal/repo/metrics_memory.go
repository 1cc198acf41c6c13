package repo

import "context"

type InMemoryMetricsRepository struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	alertRepo    AlertRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	alertRepo AlertRepository,
) {
	i.productRepo = productRepo
	i.categoryRepo = categoryRepo
	i.alertRepo = alertRepo
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{Categories: []CategoryCount{}, RecentAlerts: []RecentAlert{}}

	products, err := i.productRepo.GetActive(ctx)
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	alerts, err := i.alertRepo.GetActive(ctx)
	if err != nil {
		return m, err
	}

	// Highest active threshold per product; one alert above the stock is enough.
	thresholds := map[int64]int{}
	for _, a := range alerts {
		if t, ok := thresholds[a.ProductID]; !ok || a.Threshold > t {
			thresholds[a.ProductID] = a.Threshold
		}
	}

	perCategory := map[int64]int{}
	for _, p := range products {
		if t, ok := thresholds[p.ID]; ok && p.Quantity < t {
			m.LowStockProducts++
		}
		if p.CategoryID != nil {
			perCategory[*p.CategoryID]++
		}
	}

	categories, err := i.categoryRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	for _, c := range categories {
		m.Categories = append(m.Categories, CategoryCount{Name: c.Name, Count: perCategory[c.ID]})
	}

	for idx, a := range alerts {
		if idx == recentAlertsLimit {
			break
		}
		m.RecentAlerts = append(m.RecentAlerts, RecentAlert{ID: a.ID, Message: a.Message, Date: a.Date})
	}

	return m, nil
}
