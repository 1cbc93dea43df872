package client

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/group-read-service/internal/db"
)

// Repository reads clients for selection lists.
type Repository interface {
	// ListForLookupByOffice returns the active clients of one office.
	ListForLookupByOffice(ctx context.Context, officeID int64) ([]Option, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListForLookupByOffice(ctx context.Context, officeID int64) ([]Option, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("c.id", "c.account_no", "c.display_name", "c.office_id").
		From("public.m_client c").
		Where(squirrel.Eq{"c.office_id": officeID}).
		Where(squirrel.Eq{"c.status_enum": StatusActive}).
		OrderBy("c.display_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, db.Wrap("list clients", err)
	}
	defer rows.Close()

	var clients []Option
	for rows.Next() {
		var c Option
		if err := rows.Scan(&c.ID, &c.AccountNo, &c.DisplayName, &c.OfficeID); err != nil {
			return nil, fmt.Errorf("scan client failed: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list clients", err)
	}
	return clients, nil
}
