package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/group-read-service/internal/db"
	"github.com/nekogravitycat/group-read-service/internal/pkg/pagination"
)

// Repository defines read access to m_group.
type Repository interface {
	// List returns one page of group-level rows within the hierarchy scope.
	List(ctx context.Context, scope string, params SearchParameters) (*pagination.Page[*Group], error)
	// GetByID returns the group only if it lies within the hierarchy scope.
	GetByID(ctx context.Context, id int64, scope string) (*Group, error)
	// ListLookup returns the groups of one office. A nil scope applies no
	// hierarchy restriction.
	ListLookup(ctx context.Context, officeID int64, scope *string) ([]*Lookup, error)
	// ListCentersForDropdown returns the centers of one office within the scope.
	ListCentersForDropdown(ctx context.Context, officeID int64, scope string) ([]Center, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) List(ctx context.Context, scope string, params SearchParameters) (*pagination.Page[*Group], error) {
	count, window, err := listQueries(scope, params)
	if err != nil {
		return nil, err
	}

	page, err := pagination.FetchPageSnapshot(ctx, r.pool, count, window, scanGroup)
	if err != nil {
		return nil, fmt.Errorf("list groups failed: %w", err)
	}
	return page, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64, scope string) (*Group, error) {
	query, args, err := selectGroups(groupColumns...).
		Where(squirrel.Eq{groupTable.col("id"): id}).
		Where(scopePredicate(scope)).
		Where(levelPredicate()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get group query failed: %w", err)
	}

	g, err := scanGroup(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, db.Wrap("get group", err)
	}
	return g, nil
}

func (r *pgxRepository) ListLookup(ctx context.Context, officeID int64, scope *string) ([]*Lookup, error) {
	query := psql.Select(lookupColumns...).
		From(groupTable.ref()).
		Where(levelPredicate()).
		Where(squirrel.Eq{groupTable.col("office_id"): officeID})

	if scope != nil {
		query = query.
			Join(officeTable.ref() + " ON " + groupTable.col("office_id") + " = " + officeTable.col("id")).
			Where(scopePredicate(*scope))
	}

	sql, args, err := query.
		OrderBy(groupTable.col("display_name")+" ASC", groupTable.col("id")+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lookup groups query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, db.Wrap("lookup groups", err)
	}
	defer rows.Close()

	var lookups []*Lookup
	for rows.Next() {
		l, err := scanLookup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group lookup failed: %w", err)
		}
		lookups = append(lookups, l)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("lookup groups", err)
	}
	return lookups, nil
}

func (r *pgxRepository) ListCentersForDropdown(ctx context.Context, officeID int64, scope string) ([]Center, error) {
	sql, args, err := psql.Select(groupTable.col("id"), groupTable.col("display_name"), groupTable.col("office_id")).
		From(groupTable.ref()).
		Join(officeTable.ref()+" ON "+groupTable.col("office_id")+" = "+officeTable.col("id")).
		Where(squirrel.Eq{groupTable.col("level_id"): int(LevelCenter)}).
		Where(squirrel.Eq{groupTable.col("office_id"): officeID}).
		Where(scopePredicate(scope)).
		OrderBy(groupTable.col("display_name") + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list centers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, db.Wrap("list centers", err)
	}
	defer rows.Close()

	var centers []Center
	for rows.Next() {
		var c Center
		if err := rows.Scan(&c.ID, &c.Name, &c.OfficeID); err != nil {
			return nil, fmt.Errorf("scan center failed: %w", err)
		}
		centers = append(centers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list centers", err)
	}
	return centers, nil
}
