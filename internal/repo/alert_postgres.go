package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/jimlawless/whereami"
)

type PostgresAlertRepository struct {
	db *sql.DB
}

func NewPostgresAlertRepository(db *sql.DB) *PostgresAlertRepository {
	return &PostgresAlertRepository{db: db}
}

const alertColumns = `ale_id, ale_seuil, ale_message, ale_date, ale_prod_id, ale_uti_id, ale_is_deleted`

func scanAlert(s rowScanner) (models.Alert, error) {
	var a models.Alert
	err := s.Scan(&a.ID, &a.Threshold, &a.Message, &a.Date, &a.ProductID, &a.UserID, &a.IsDeleted)
	return a, err
}

func (r *PostgresAlertRepository) Create(ctx context.Context, a models.Alert) (models.Alert, error) {
	query := `INSERT INTO alerte (ale_seuil, ale_message, ale_date, ale_prod_id, ale_uti_id, ale_is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING ale_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, a.Threshold, a.Message, a.Date, a.ProductID, a.UserID, a.IsDeleted).Scan(&a.ID)
	if err != nil {
		return models.Alert{}, wrap(whereami.WhereAmI(), err)
	}
	return a, nil
}

func (r *PostgresAlertRepository) GetByID(ctx context.Context, id int64) (models.Alert, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	a, err := scanAlert(r.db.QueryRowContext(ctx, `SELECT `+alertColumns+` FROM alerte WHERE ale_id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Alert{}, ErrAlertNotFound
	}
	if err != nil {
		return models.Alert{}, wrap(whereami.WhereAmI(), err)
	}
	return a, nil
}

func (r *PostgresAlertRepository) Update(ctx context.Context, a models.Alert) (models.Alert, error) {
	query := `UPDATE alerte
		SET ale_seuil = $1, ale_message = $2, ale_date = $3, ale_prod_id = $4, ale_uti_id = $5, ale_is_deleted = $6
		WHERE ale_id = $7`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, a.Threshold, a.Message, a.Date, a.ProductID, a.UserID, a.IsDeleted, a.ID)
	if err != nil {
		return models.Alert{}, wrap(whereami.WhereAmI(), err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Alert{}, ErrAlertNotFound
	}
	return a, nil
}

func (r *PostgresAlertRepository) GetActive(ctx context.Context) ([]models.Alert, error) {
	return r.list(ctx, `SELECT `+alertColumns+` FROM alerte WHERE ale_is_deleted = FALSE ORDER BY ale_date DESC, ale_id DESC`)
}

func (r *PostgresAlertRepository) GetActiveByUser(ctx context.Context, userID int64) ([]models.Alert, error) {
	return r.list(ctx, `SELECT `+alertColumns+` FROM alerte WHERE ale_uti_id = $1 AND ale_is_deleted = FALSE ORDER BY ale_id`, userID)
}

func (r *PostgresAlertRepository) GetActiveByProduct(ctx context.Context, productID int64) ([]models.Alert, error) {
	return r.list(ctx, `SELECT `+alertColumns+` FROM alerte WHERE ale_prod_id = $1 AND ale_is_deleted = FALSE ORDER BY ale_id`, productID)
}

func (r *PostgresAlertRepository) AddUser(ctx context.Context, au models.AlertUser) (models.AlertUser, error) {
	query := `INSERT INTO alerte_utilisateur (aleuti_ale_id, aleuti_uti_courriel) VALUES ($1, $2) RETURNING aleuti_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.QueryRowContext(ctx, query, au.AlertID, au.UserEmail).Scan(&au.ID); err != nil {
		if isUniqueViolation(err) {
			return models.AlertUser{}, ErrDuplicatedValueUnique
		}
		return models.AlertUser{}, wrap(whereami.WhereAmI(), err)
	}
	return au, nil
}

func (r *PostgresAlertRepository) GetUserEmails(ctx context.Context, alertID int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT aleuti_uti_courriel FROM alerte_utilisateur WHERE aleuti_ale_id = $1 ORDER BY aleuti_id`, alertID)
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, wrap(whereami.WhereAmI(), err)
		}
		emails = append(emails, email)
	}
	return emails, wrap(whereami.WhereAmI(), rows.Err())
}

func (r *PostgresAlertRepository) list(ctx context.Context, query string, args ...any) ([]models.Alert, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	alerts := []models.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, wrap(whereami.WhereAmI(), err)
		}
		alerts = append(alerts, a)
	}
	return alerts, wrap(whereami.WhereAmI(), rows.Err())
}
