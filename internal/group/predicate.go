package group

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// table is a relation in the group listing and the alias its columns are
// qualified with. m_group and m_office share column names, so every column
// reference goes through col.
type table struct {
	name  string
	alias string
}

func (t table) ref() string {
	return t.name + " " + t.alias
}

func (t table) col(column string) string {
	return t.alias + "." + column
}

var (
	groupTable  = table{name: "public.m_group", alias: "g"}
	officeTable = table{name: "public.m_office", alias: "o"}
	centerTable = table{name: "public.m_group", alias: "pg"}
	staffTable  = table{name: "public.m_staff", alias: "s"}
)

// orderColumns is the allow-list of sortable columns. The keys are part of
// the public API and must stay stable.
var orderColumns = map[string]string{
	"id":               groupTable.col("id"),
	"name":             groupTable.col("display_name"),
	"display_name":     groupTable.col("display_name"),
	"external_id":      groupTable.col("external_id"),
	"status":           groupTable.col("status_enum"),
	"activation_date":  groupTable.col("activation_date"),
	"hierarchy":        groupTable.col("hierarchy"),
	"office_id":        groupTable.col("office_id"),
	"office_name":      officeTable.col("name"),
	"office_hierarchy": officeTable.col("hierarchy"),
	"center_name":      centerTable.col("display_name"),
	"staff_name":       staffTable.col("display_name"),
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// selectGroups starts a select over m_group joined with its office, and
// optionally its center and staff.
func selectGroups(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...).
		From(groupTable.ref()).
		Join(officeTable.ref() + " ON " + groupTable.col("office_id") + " = " + officeTable.col("id")).
		LeftJoin(centerTable.ref() + " ON " + groupTable.col("parent_id") + " = " + centerTable.col("id")).
		LeftJoin(staffTable.ref() + " ON " + groupTable.col("staff_id") + " = " + staffTable.col("id"))
}

// scopePredicate limits rows to offices matching the caller's hierarchy pattern.
func scopePredicate(pattern string) squirrel.Sqlizer {
	return squirrel.Like{officeTable.col("hierarchy"): pattern}
}

// levelPredicate keeps group-level rows only.
func levelPredicate() squirrel.Sqlizer {
	return squirrel.Eq{groupTable.col("level_id"): int(LevelGroup)}
}

// criteria returns the conjuncts for the search parameters in a fixed order.
// The group level predicate is always first; the rest are only added for
// parameters that are set.
func criteria(p SearchParameters) squirrel.And {
	conj := squirrel.And{levelPredicate()}

	if term := strings.TrimSpace(p.Search); term != "" {
		pattern := containsPattern(term)
		conj = append(conj, squirrel.Or{
			squirrel.ILike{groupTable.col("display_name"): pattern},
			squirrel.ILike{groupTable.col("external_id"): pattern},
		})
	}
	if p.OfficeID != nil {
		conj = append(conj, squirrel.Eq{groupTable.col("office_id"): *p.OfficeID})
	}
	if p.ExternalID != nil {
		conj = append(conj, squirrel.Eq{groupTable.col("external_id"): *p.ExternalID})
	}
	if p.Name != nil {
		conj = append(conj, squirrel.ILike{groupTable.col("display_name"): containsPattern(*p.Name)})
	}
	if p.Hierarchy != nil {
		conj = append(conj, squirrel.Like{officeTable.col("hierarchy"): HierarchyPattern(*p.Hierarchy)})
	}

	return conj
}

// Validate rejects parameters that must never reach the database.
func (p SearchParameters) Validate() error {
	if p.OrderBy != "" {
		if _, ok := orderColumns[p.OrderBy]; !ok {
			return ErrInvalidOrderBy
		}
	}
	if _, err := sortDirection(p.SortOrder); err != nil {
		return err
	}
	if p.Limit != nil && *p.Limit <= 0 {
		return ErrInvalidLimit
	}
	if p.Offset != nil && *p.Offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}

func sortDirection(order string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(order)) {
	case "", "ASC":
		return "ASC", nil
	case "DESC":
		return "DESC", nil
	default:
		return "", ErrInvalidSortOrder
	}
}

// orderBy returns the ORDER BY terms. g.id always closes the list so that
// windows over equal sort keys stay stable.
func orderBy(p SearchParameters) []string {
	tiebreak := groupTable.col("id") + " ASC"
	if p.OrderBy == "" {
		return []string{tiebreak}
	}

	column := orderColumns[p.OrderBy]
	dir, _ := sortDirection(p.SortOrder)
	terms := []string{column + " " + dir}
	if column != groupTable.col("id") {
		terms = append(terms, tiebreak)
	}
	return terms
}

// listQueries builds the count and window statements of a listing. Both
// share the same joins and predicates.
func listQueries(scope string, p SearchParameters) (count, window squirrel.SelectBuilder, err error) {
	if err := p.Validate(); err != nil {
		return count, window, err
	}

	where := criteria(p)

	count = selectGroups("count(*)").
		Where(scopePredicate(scope)).
		Where(where)

	window = selectGroups(groupColumns...).
		Where(scopePredicate(scope)).
		Where(where).
		OrderBy(orderBy(p)...)

	if p.Limit != nil {
		window = window.Limit(uint64(*p.Limit))
		if p.Offset != nil {
			window = window.Offset(uint64(*p.Offset))
		}
	}

	return count, window, nil
}
