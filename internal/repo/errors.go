package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrAlertNotFound         = errors.New("alert not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)

// queryTimeout bounds every statement issued by the Postgres repositories.
const queryTimeout = 3 * time.Second

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// wrap prefixes err with the caller location, keeping it matchable with errors.Is.
func wrap(where string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", where, err)
}
