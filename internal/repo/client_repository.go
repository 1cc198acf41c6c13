package repo

import (
	"context"
	"database/sql"
	"sync"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/jimlawless/whereami"
)

type ClientRepository interface {
	Create(ctx context.Context, c models.Client) (models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
}

type PostgresClientRepository struct {
	db *sql.DB
}

func NewPostgresClientRepository(db *sql.DB) *PostgresClientRepository {
	return &PostgresClientRepository{db: db}
}

func (r *PostgresClientRepository) Create(ctx context.Context, c models.Client) (models.Client, error) {
	query := `INSERT INTO client (cli_nom, cli_courriel, cli_telephone) VALUES ($1, $2, $3) RETURNING cli_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Client{}, ErrDuplicatedValueUnique
		}
		return models.Client{}, wrap(whereami.WhereAmI(), err)
	}
	return c, nil
}

func (r *PostgresClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	query := `SELECT cli_id, cli_nom, cli_courriel, cli_telephone FROM client ORDER BY cli_id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, wrap(whereami.WhereAmI(), err)
		}
		clients = append(clients, c)
	}
	return clients, wrap(whereami.WhereAmI(), rows.Err())
}

type InMemoryClientRepository struct {
	mu      sync.RWMutex
	clients []models.Client
	nextID  int64
}

func NewInMemoryClientRepository() *InMemoryClientRepository {
	return &InMemoryClientRepository{clients: []models.Client{}, nextID: 1}
}

func (r *InMemoryClientRepository) Create(_ context.Context, c models.Client) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.clients {
		if existing.Email == c.Email {
			return models.Client{}, ErrDuplicatedValueUnique
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.clients = append(r.clients, c)
	return c, nil
}

func (r *InMemoryClientRepository) GetAll(_ context.Context) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}
