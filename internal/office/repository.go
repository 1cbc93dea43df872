package office

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/group-read-service/internal/db"
)

// Repository reads offices for selection lists.
type Repository interface {
	// ListForDropdown returns the offices whose hierarchy matches the given
	// prefix pattern, ordered so that parents precede their children.
	ListForDropdown(ctx context.Context, hierarchyPattern string) ([]Option, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListForDropdown(ctx context.Context, hierarchyPattern string) ([]Option, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("o.id", "o.name", "o.external_id", "o.hierarchy").
		From("public.m_office o").
		Where(squirrel.Like{"o.hierarchy": hierarchyPattern}).
		OrderBy("o.hierarchy ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list offices query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, db.Wrap("list offices", err)
	}
	defer rows.Close()

	var offices []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.Name, &o.ExternalID, &o.Hierarchy); err != nil {
			return nil, fmt.Errorf("scan office failed: %w", err)
		}
		offices = append(offices, o)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list offices", err)
	}
	return offices, nil
}
