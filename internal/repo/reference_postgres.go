package repo

import (
	"context"
	"database/sql"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/jimlawless/whereami"
)

// namedTable describes the two lookup tables (fabricant, categorie), which
// share the same id/name shape.
type namedTable struct {
	table   string
	idCol   string
	nameCol string
}

var (
	fabricantTable = namedTable{table: "fabricant", idCol: "fab_id", nameCol: "fab_nom"}
	categorieTable = namedTable{table: "categorie", idCol: "cat_id", nameCol: "cat_nom"}
)

type namedRow struct {
	id   int64
	name string
}

func (t namedTable) create(ctx context.Context, db *sql.DB, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO ` + t.table + ` (` + t.nameCol + `) VALUES ($1) RETURNING ` + t.idCol
	var id int64
	if err := db.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicatedValueUnique
		}
		return 0, wrap(whereami.WhereAmI(), err)
	}
	return id, nil
}

func (t namedTable) all(ctx context.Context, db *sql.DB) ([]namedRow, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + t.idCol + `, ` + t.nameCol + ` FROM ` + t.table + ` ORDER BY ` + t.idCol
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var out []namedRow
	for rows.Next() {
		var nr namedRow
		if err := rows.Scan(&nr.id, &nr.name); err != nil {
			return nil, wrap(whereami.WhereAmI(), err)
		}
		out = append(out, nr)
	}
	return out, wrap(whereami.WhereAmI(), rows.Err())
}

func (t namedTable) exists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT EXISTS (SELECT 1 FROM ` + t.table + ` WHERE ` + t.idCol + ` = $1)`
	var ok bool
	if err := db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, wrap(whereami.WhereAmI(), err)
	}
	return ok, nil
}

type PostgresManufacturerRepository struct {
	db *sql.DB
}

func NewPostgresManufacturerRepository(db *sql.DB) *PostgresManufacturerRepository {
	return &PostgresManufacturerRepository{db: db}
}

func (r *PostgresManufacturerRepository) Create(ctx context.Context, m models.Manufacturer) (models.Manufacturer, error) {
	id, err := fabricantTable.create(ctx, r.db, m.Name)
	if err != nil {
		return models.Manufacturer{}, err
	}
	m.ID = id
	return m, nil
}

func (r *PostgresManufacturerRepository) GetAll(ctx context.Context) ([]models.Manufacturer, error) {
	rows, err := fabricantTable.all(ctx, r.db)
	if err != nil {
		return nil, err
	}
	out := make([]models.Manufacturer, len(rows))
	for i, nr := range rows {
		out[i] = models.Manufacturer{ID: nr.id, Name: nr.name}
	}
	return out, nil
}

func (r *PostgresManufacturerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return fabricantTable.exists(ctx, r.db, id)
}

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	id, err := categorieTable.create(ctx, r.db, c.Name)
	if err != nil {
		return models.Category{}, err
	}
	c.ID = id
	return c, nil
}

func (r *PostgresCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := categorieTable.all(ctx, r.db)
	if err != nil {
		return nil, err
	}
	out := make([]models.Category, len(rows))
	for i, nr := range rows {
		out[i] = models.Category{ID: nr.id, Name: nr.name}
	}
	return out, nil
}

func (r *PostgresCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return categorieTable.exists(ctx, r.db, id)
}
