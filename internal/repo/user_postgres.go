package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/jimlawless/whereami"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, `SELECT uti_courriel, uti_id, uti_password, uti_rol_id FROM utilisateur WHERE uti_courriel = $1`, email)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.getOne(ctx, `SELECT uti_courriel, uti_id, uti_password, uti_rol_id FROM utilisateur WHERE uti_id = $1`, id)
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO utilisateur (uti_courriel, uti_password, uti_rol_id) VALUES ($1, $2, $3) RETURNING uti_id`
	if err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.RoleID).Scan(&u.ID); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicatedValueUnique
		}
		return models.User{}, wrap(whereami.WhereAmI(), err)
	}
	return u, nil
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg any) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.Email, &u.ID, &u.PasswordHash, &u.RoleID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, wrap(whereami.WhereAmI(), err)
	}
	return u, nil
}
