package staff

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/group-read-service/internal/db"
)

// Repository reads active staff for selection lists.
type Repository interface {
	// ListByOffice returns the staff assigned to exactly this office.
	ListByOffice(ctx context.Context, officeID int64) ([]Option, error)
	// ListInOfficeHierarchy returns the staff of the office and of every
	// office above it in the hierarchy.
	ListInOfficeHierarchy(ctx context.Context, officeID int64, loanOfficersOnly bool) ([]Option, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectStaff() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("s.id", "s.display_name", "so.id", "so.name", "s.is_loan_officer").
		From("public.m_staff s").
		Join("public.m_office so ON s.office_id = so.id").
		Where(squirrel.Eq{"s.is_active": true})
}

func (r *pgxRepository) ListByOffice(ctx context.Context, officeID int64) ([]Option, error) {
	query := selectStaff().
		Where(squirrel.Eq{"s.office_id": officeID}).
		OrderBy("s.display_name ASC")

	return r.list(ctx, query)
}

func (r *pgxRepository) ListInOfficeHierarchy(ctx context.Context, officeID int64, loanOfficersOnly bool) ([]Option, error) {
	// An office is an ancestor-or-self of the target when the target's
	// hierarchy starts with the office's hierarchy.
	query := selectStaff().
		Join("public.m_office target ON target.hierarchy LIKE so.hierarchy || '%'").
		Where(squirrel.Eq{"target.id": officeID})

	if loanOfficersOnly {
		query = query.Where(squirrel.Eq{"s.is_loan_officer": true})
	}

	query = query.OrderBy("so.hierarchy ASC", "s.display_name ASC")

	return r.list(ctx, query)
}

func (r *pgxRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]Option, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list staff query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, db.Wrap("list staff", err)
	}
	defer rows.Close()

	var staff []Option
	for rows.Next() {
		var s Option
		if err := rows.Scan(&s.ID, &s.DisplayName, &s.OfficeID, &s.OfficeName, &s.IsLoanOfficer); err != nil {
			return nil, fmt.Errorf("scan staff failed: %w", err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list staff", err)
	}
	return staff, nil
}
