package repo

import (
	"context"
	"database/sql"

	"github.com/jimlawless/whereami"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	m := Metrics{Categories: []CategoryCount{}, RecentAlerts: []RecentAlert{}}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM produit WHERE prod_is_deleted = FALSE`).Scan(&m.TotalProducts); err != nil {
		return Metrics{}, wrap(whereami.WhereAmI(), err)
	}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT p.prod_id)
		FROM produit p
		JOIN alerte a ON a.ale_prod_id = p.prod_id
		WHERE p.prod_is_deleted = FALSE
		  AND a.ale_is_deleted = FALSE
		  AND p.prod_quantite < a.ale_seuil
	`).Scan(&m.LowStockProducts)
	if err != nil {
		return Metrics{}, wrap(whereami.WhereAmI(), err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.cat_nom, COUNT(p.prod_id)
		FROM categorie c
		LEFT JOIN produit p ON p.prod_cat_id = c.cat_id AND p.prod_is_deleted = FALSE
		GROUP BY c.cat_id, c.cat_nom
		ORDER BY c.cat_id
	`)
	if err != nil {
		return Metrics{}, wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Name, &cc.Count); err != nil {
			return Metrics{}, wrap(whereami.WhereAmI(), err)
		}
		m.Categories = append(m.Categories, cc)
	}
	if err := rows.Err(); err != nil {
		return Metrics{}, wrap(whereami.WhereAmI(), err)
	}

	alertRows, err := r.db.QueryContext(ctx, `
		SELECT ale_id, ale_message, ale_date
		FROM alerte
		WHERE ale_is_deleted = FALSE
		ORDER BY ale_date DESC, ale_id DESC
		LIMIT $1
	`, recentAlertsLimit)
	if err != nil {
		return Metrics{}, wrap(whereami.WhereAmI(), err)
	}
	defer alertRows.Close()
	for alertRows.Next() {
		var ra RecentAlert
		if err := alertRows.Scan(&ra.ID, &ra.Message, &ra.Date); err != nil {
			return Metrics{}, wrap(whereami.WhereAmI(), err)
		}
		m.RecentAlerts = append(m.RecentAlerts, ra)
	}
	if err := alertRows.Err(); err != nil {
		return Metrics{}, wrap(whereami.WhereAmI(), err)
	}

	return m, nil
}
