package group

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/group-read-service/internal/testutil"
)

// seedHierarchy builds two disjoint office trees plus an office whose id
// shares a prefix with the head office.
func seedHierarchy(t *testing.T) *pgxpool.Pool {
	pool := testutil.Pool(t)

	testutil.Office(t, pool, 1, "Head Office", ".1.")
	testutil.Office(t, pool, 2, "Branch", ".1.2.")
	testutil.Office(t, pool, 3, "Other Head", ".3.")
	testutil.Office(t, pool, 4, "Other Branch", ".3.4.")
	testutil.Office(t, pool, 10, "Tenth", ".10.")

	testutil.Staff(t, pool, 1, 2, "Alice Officer", true)

	center := int64(12)
	staffID := int64(1)
	testutil.Group(t, pool, testutil.GroupRow{ID: 12, Name: "North Center", OfficeID: 2, LevelID: int(LevelCenter)})
	testutil.Group(t, pool, testutil.GroupRow{ID: 10, Name: "Westside", ExternalID: ptr("W-1"), OfficeID: 2, LevelID: int(LevelGroup)})
	testutil.Group(t, pool, testutil.GroupRow{ID: 11, Name: "Eastside", OfficeID: 1, LevelID: int(LevelGroup)})
	testutil.Group(t, pool, testutil.GroupRow{ID: 13, Name: "Westbrook", OfficeID: 4, LevelID: int(LevelGroup)})
	testutil.Group(t, pool, testutil.GroupRow{ID: 14, Name: "Tenth Street", OfficeID: 10, LevelID: int(LevelGroup)})
	testutil.Group(t, pool, testutil.GroupRow{ID: 15, Name: "North Weavers", OfficeID: 2, LevelID: int(LevelGroup), ParentID: &center, StaffID: &staffID})

	return pool
}

func groupIDs(groups []*Group) []int64 {
	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestRepositoryListScoped(t *testing.T) {
	repo := NewPgxRepository(seedHierarchy(t))
	ctx := context.Background()

	page, err := repo.List(ctx, ".1.%", SearchParameters{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, []int64{10, 11, 15}, groupIDs(page.Items))

	t.Run("name contains", func(t *testing.T) {
		page, err := repo.List(ctx, ".1.%", SearchParameters{Name: ptr("Wes")})
		require.NoError(t, err)
		assert.Equal(t, []int64{10}, groupIDs(page.Items))
	})

	t.Run("free text matches external id", func(t *testing.T) {
		page, err := repo.List(ctx, ".1.%", SearchParameters{Search: "w-1"})
		require.NoError(t, err)
		assert.Equal(t, []int64{10}, groupIDs(page.Items))
	})

	t.Run("hostile name is a literal", func(t *testing.T) {
		page, err := repo.List(ctx, ".1.%", SearchParameters{Name: ptr("x' OR '1'='1")})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Items)
	})

	t.Run("other tree", func(t *testing.T) {
		page, err := repo.List(ctx, ".3.%", SearchParameters{})
		require.NoError(t, err)
		assert.Equal(t, []int64{13}, groupIDs(page.Items))
	})

	t.Run("ordered by office name", func(t *testing.T) {
		page, err := repo.List(ctx, ".1.%", SearchParameters{OrderBy: "office_name", SortOrder: "desc"})
		require.NoError(t, err)
		assert.Equal(t, []int64{11, 10, 15}, groupIDs(page.Items))
	})
}

func TestRepositoryListTotalIndependentOfWindow(t *testing.T) {
	repo := NewPgxRepository(seedHierarchy(t))
	ctx := context.Background()

	for offset, want := range map[int]int{0: 2, 2: 1, 10: 0} {
		page, err := repo.List(ctx, ".1.%", SearchParameters{Limit: ptr(2), Offset: ptr(offset)})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total, "offset %d", offset)
		assert.Len(t, page.Items, want, "offset %d", offset)
	}
}

func TestRepositoryGetByID(t *testing.T) {
	repo := NewPgxRepository(seedHierarchy(t))
	ctx := context.Background()

	g, err := repo.GetByID(ctx, 15, ".1.%")
	require.NoError(t, err)
	assert.Equal(t, "North Weavers", g.Name)
	assert.Equal(t, "Branch", g.OfficeName)
	assert.Equal(t, ".1.2.", g.OfficeHierarchy)
	require.NotNil(t, g.CenterName)
	assert.Equal(t, "North Center", *g.CenterName)
	require.NotNil(t, g.StaffName)
	assert.Equal(t, "Alice Officer", *g.StaffName)
	assert.Equal(t, StatusActive, g.Status)
	assert.Nil(t, g.ExternalID)
	assert.NotNil(t, g.ActivationDate)

	t.Run("outside hierarchy", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 13, ".1.%")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("prefix sibling office", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 14, ".1.%")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("center level", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 12, ".1.%")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("caller in unrelated office", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 10, ".9.%")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999, ".1.%")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepositoryListLookup(t *testing.T) {
	repo := NewPgxRepository(seedHierarchy(t))
	ctx := context.Background()

	lookups, err := repo.ListLookup(ctx, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []*Lookup{{ID: 15, Name: "North Weavers"}, {ID: 10, Name: "Westside"}}, lookups)

	lookups, err = repo.ListLookup(ctx, 4, nil)
	require.NoError(t, err)
	assert.Len(t, lookups, 1)

	scope := ".1.%"
	lookups, err = repo.ListLookup(ctx, 4, &scope)
	require.NoError(t, err)
	assert.Empty(t, lookups)
}

func TestRepositoryListCentersForDropdown(t *testing.T) {
	repo := NewPgxRepository(seedHierarchy(t))

	centers, err := repo.ListCentersForDropdown(context.Background(), 2, ".1.%")
	require.NoError(t, err)
	assert.Equal(t, []Center{{ID: 12, Name: "North Center", OfficeID: 2}}, centers)

	centers, err = repo.ListCentersForDropdown(context.Background(), 2, ".3.%")
	require.NoError(t, err)
	assert.Empty(t, centers)
}
