package auth

// Caller is the authenticated user a read is performed for. Every
// hierarchy-scoped operation receives it explicitly.
type Caller struct {
	UserID   int64
	Username string
	OfficeID int64
	// OfficeHierarchy is the materialized path of the caller's office,
	// e.g. ".1.2.", always with a trailing separator.
	OfficeHierarchy string
}
