package codevalue

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/group-read-service/internal/db"
)

// Repository reads code values by code name.
type Repository interface {
	ListByCode(ctx context.Context, codeName string) ([]Value, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListByCode(ctx context.Context, codeName string) ([]Value, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("v.id", "v.code_value", "v.order_position").
		From("public.m_code_value v").
		Join("public.m_code c ON v.code_id = c.id").
		Where(squirrel.Eq{"c.code_name": codeName}).
		OrderBy("v.order_position ASC", "v.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list code values query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, db.Wrap("list code values", err)
	}
	defer rows.Close()

	var values []Value
	for rows.Next() {
		var v Value
		if err := rows.Scan(&v.ID, &v.Name, &v.Position); err != nil {
			return nil, fmt.Errorf("scan code value failed: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list code values", err)
	}
	return values, nil
}
