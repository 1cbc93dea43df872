package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStorage marks failures of the backing store. Repositories join it into
// the errors they return so callers can tell infrastructure failures apart
// from domain errors.
var ErrStorage = errors.New("storage failure")

// Wrap annotates a storage failure with the failed operation and ErrStorage.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s failed: %w: %w", op, ErrStorage, err)
}

// IsTransient reports whether err looks like a failure that could succeed on
// a later attempt. It only drives log severity, nothing is retried.
func IsTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsTransactionRollback(pgErr.Code) ||
			pgErr.Code == pgerrcode.QueryCanceled ||
			pgErr.Code == pgerrcode.AdminShutdown ||
			pgErr.Code == pgerrcode.TooManyConnections
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
