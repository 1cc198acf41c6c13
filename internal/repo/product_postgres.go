package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/jimlawless/whereami"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `prod_id, prod_modele, prod_fab_id, prod_cat_id, prod_quantite, prod_is_deleted`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (models.Product, error) {
	var p models.Product
	err := s.Scan(&p.ID, &p.Model, &p.ManufacturerID, &p.CategoryID, &p.Quantity, &p.IsDeleted)
	return p, err
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO produit (prod_modele, prod_fab_id, prod_cat_id, prod_quantite, prod_is_deleted)
		VALUES ($1, $2, $3, $4, $5) RETURNING prod_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Model, p.ManufacturerID, p.CategoryID, p.Quantity, p.IsDeleted).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, wrap(whereami.WhereAmI(), err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetActive(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produit WHERE prod_is_deleted = FALSE ORDER BY prod_id`
	return r.list(ctx, query)
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produit WHERE prod_id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, wrap(whereami.WhereAmI(), err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM produit WHERE prod_id = ANY($1)`
	return r.list(ctx, query, ids)
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	query := `UPDATE produit
		SET prod_modele = $1, prod_fab_id = $2, prod_cat_id = $3, prod_quantite = $4, prod_is_deleted = $5
		WHERE prod_id = $6`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Model, p.ManufacturerID, p.CategoryID, p.Quantity, p.IsDeleted, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, wrap(whereami.WhereAmI(), err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) list(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, wrap(whereami.WhereAmI(), err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}
	return products, nil
}
