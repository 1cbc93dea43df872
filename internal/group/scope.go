package group

import (
	"strings"

	"github.com/nekogravitycat/group-read-service/internal/auth"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match itself literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// HierarchyPattern turns a materialized office path into the LIKE pattern
// matching that office and all of its descendants: ".1.2." -> ".1.2.%".
func HierarchyPattern(hierarchy string) string {
	return escapeLike(hierarchy) + "%"
}

// containsPattern matches any value containing s.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

// DefaultOfficeID returns officeID when given, otherwise the caller's own office.
func DefaultOfficeID(officeID *int64, caller auth.Caller) int64 {
	if officeID != nil {
		return *officeID
	}
	return caller.OfficeID
}
