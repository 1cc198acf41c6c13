package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/jimlawless/whereami"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement.
func (r *PostgresMovementRepository) Log(ctx context.Context, m models.StockMovement) (models.StockMovement, error) {
	query := `INSERT INTO mouvement (mouv_prod_id, mouv_delta, mouv_quantite, mouv_date)
		VALUES ($1, $2, $3, $4) RETURNING mouv_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, m.ProductID, m.Delta, m.Quantity, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return models.StockMovement{}, wrap(whereami.WhereAmI(), err)
	}
	return m, nil
}

func (r *PostgresMovementRepository) GetByProductID(ctx context.Context, productID int64, mf MovementFilter) ([]models.StockMovement, int, error) {
	if mf.Offset != nil && *mf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	whereClause, args := buildMovementWhere(productID, mf)

	total, err := r.getTotal(ctx, whereClause, args)
	if err != nil {
		return nil, 0, wrap(whereami.WhereAmI(), err)
	}

	// limit = 0 asks for the count only
	if mf.Limit != nil && *mf.Limit == 0 {
		return []models.StockMovement{}, total, nil
	}
	if mf.Offset != nil && *mf.Offset >= total {
		return []models.StockMovement{}, total, nil
	}

	query, queryArgs := buildMovementQuery(whereClause, args, mf)
	movements, err := r.executeQuery(ctx, query, queryArgs)
	if err != nil {
		return nil, 0, wrap(whereami.WhereAmI(), err)
	}
	return movements, total, nil
}

func buildMovementWhere(productID int64, mf MovementFilter) (string, []any) {
	args := []any{productID}
	whereClause := "WHERE mouv_prod_id = $1"
	argIndex := 2

	if mf.Since != nil {
		whereClause += fmt.Sprintf(" AND mouv_date >= $%d", argIndex)
		args = append(args, *mf.Since)
		argIndex++
	}
	if mf.Until != nil {
		whereClause += fmt.Sprintf(" AND mouv_date <= $%d", argIndex)
		args = append(args, *mf.Until)
	}
	return whereClause, args
}

func buildMovementQuery(whereClause string, baseArgs []any, mf MovementFilter) (string, []any) {
	query := fmt.Sprintf(`SELECT mouv_id, mouv_prod_id, mouv_delta, mouv_quantite, mouv_date
		FROM mouvement %s ORDER BY mouv_date DESC, mouv_id DESC`, whereClause)
	args := append([]any{}, baseArgs...)
	argIndex := len(baseArgs) + 1

	limit := maxMovementsPage
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, maxMovementsPage)
	}
	query += fmt.Sprintf(" LIMIT $%d", argIndex)
	args = append(args, limit)
	argIndex++

	if mf.Offset != nil && *mf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *mf.Offset)
	}
	return query, args
}

func (r *PostgresMovementRepository) getTotal(ctx context.Context, whereClause string, args []any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM mouvement "+whereClause, args...).Scan(&total)
	return total, err
}

func (r *PostgresMovementRepository) executeQuery(ctx context.Context, query string, args []any) ([]models.StockMovement, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []models.StockMovement{}
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
