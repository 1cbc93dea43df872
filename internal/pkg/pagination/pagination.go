package pagination

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nekogravitycat/group-read-service/internal/db"
)

// Page is a bounded window of results plus the number of rows matching the
// query before limit and offset were applied.
type Page[T any] struct {
	Total int
	Items []T
}

// Querier is the read surface shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// ScanFunc maps one result row to a value.
type ScanFunc[T any] func(row pgx.Row) (T, error)

// FetchPage runs the count query and then the window query on q.
// Both queries must share the same FROM, JOIN and WHERE clauses; only the
// window query carries ORDER BY, LIMIT and OFFSET.
func FetchPage[T any](ctx context.Context, q Querier, count, window squirrel.Sqlizer, scan ScanFunc[T]) (*Page[T], error) {
	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query failed: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, db.Wrap("count rows", err)
	}

	page := &Page[T]{Total: total, Items: make([]T, 0)}
	if total == 0 {
		return page, nil
	}

	windowSQL, windowArgs, err := window.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build window query failed: %w", err)
	}

	rows, err := q.Query(ctx, windowSQL, windowArgs...)
	if err != nil {
		return nil, db.Wrap("fetch window", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row failed: %w", err)
		}
		page.Items = append(page.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("fetch window", err)
	}

	return page, nil
}

// FetchPageSnapshot runs FetchPage inside a read-only repeatable-read
// transaction so the count and the window observe the same snapshot.
func FetchPageSnapshot[T any](ctx context.Context, b TxBeginner, count, window squirrel.Sqlizer, scan ScanFunc[T]) (page *Page[T], err error) {
	tx, err := b.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, db.Wrap("begin read transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) && err == nil {
			err = db.Wrap("rollback read transaction", rbErr)
		}
	}()

	page, err = FetchPage(ctx, tx, count, window, scan)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, db.Wrap("commit read transaction", err)
	}
	return page, nil
}
