// Package testutil provides a migrated PostgreSQL database and seed helpers
// for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/group-read-service/internal/db"
)

var (
	setupOnce sync.Once
	setupErr  error
	testPool  *pgxpool.Pool
)

// Tables lists every schema table in truncation order.
var Tables = []string{
	"public.m_appuser",
	"public.m_client",
	"public.m_group",
	"public.m_staff",
	"public.m_office",
}

// Pool returns a pool on the migrated test database and empties the data
// tables. The test is skipped when TEST_DB_DSN is not set.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	// .env lives at the module root; tests run from their package dir.
	for _, path := range []string{"../../.env", "../../../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is not set")
	}

	setupOnce.Do(func() {
		if _, setupErr = db.Migrate(dsn); setupErr != nil {
			return
		}
		testPool, setupErr = db.NewPool(context.Background(), dsn, 4)
	})
	require.NoError(t, setupErr, "failed to prepare test database")

	lock(t, testPool)
	TruncateTables(t, testPool, Tables...)
	return testPool
}

// lockKey is the advisory lock serializing integration tests across
// package binaries that share one database.
const lockKey = 7_202_611

// lock holds the advisory lock on a dedicated connection until the test ends.
func lock(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", lockKey); err != nil {
		conn.Release()
		require.NoError(t, err, "failed to acquire test lock")
	}

	t.Cleanup(func() {
		_, _ = conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", lockKey)
		conn.Release()
	})
}

// TruncateTables clears the given tables for test isolation.
func TruncateTables(t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate %s", table)
	}
}

// Office inserts an office with an explicit id and materialized hierarchy.
func Office(t *testing.T, pool *pgxpool.Pool, id int64, name, hierarchy string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO public.m_office (id, hierarchy, name) VALUES ($1, $2, $3)`,
		id, hierarchy, name)
	require.NoError(t, err)
}

// Staff inserts an active staff member.
func Staff(t *testing.T, pool *pgxpool.Pool, id, officeID int64, name string, loanOfficer bool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO public.m_staff (id, office_id, display_name, is_loan_officer) VALUES ($1, $2, $3, $4)`,
		id, officeID, name, loanOfficer)
	require.NoError(t, err)
}

// GroupRow describes one m_group row to seed.
type GroupRow struct {
	ID         int64
	Name       string
	ExternalID *string
	OfficeID   int64
	LevelID    int
	ParentID   *int64
	StaffID    *int64
}

// Group inserts an active m_group row.
func Group(t *testing.T, pool *pgxpool.Pool, g GroupRow) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO public.m_group (id, display_name, external_id, office_id, level_id, parent_id, staff_id, activation_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_DATE)`,
		g.ID, g.Name, g.ExternalID, g.OfficeID, g.LevelID, g.ParentID, g.StaffID)
	require.NoError(t, err)
}

// Client inserts a client with the given status.
func Client(t *testing.T, pool *pgxpool.Pool, id, officeID int64, name string, status int) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO public.m_client (id, account_no, display_name, office_id, status_enum) VALUES ($1, $2, $3, $4, $5)`,
		id, fmt.Sprintf("%09d", id), name, officeID, status)
	require.NoError(t, err)
}

// AppUser inserts an enabled application user.
func AppUser(t *testing.T, pool *pgxpool.Pool, id, officeID int64, username string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO public.m_appuser (id, username, office_id) VALUES ($1, $2, $3)`,
		id, username, officeID)
	require.NoError(t, err)
}
