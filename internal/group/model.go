package group

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/group-read-service/internal/pkg/apperror"
)

var (
	// ErrNotFound covers both a missing group and a group outside the
	// caller's hierarchy. The two are never distinguished.
	ErrNotFound         = apperror.NotFound("group not found")
	ErrInvalidOrderBy   = apperror.Validation("invalid order_by column")
	ErrInvalidSortOrder = apperror.Validation("sort_order must be ASC or DESC")
	ErrInvalidLimit     = apperror.Validation("limit must be greater than zero")
	ErrInvalidOffset    = apperror.Validation("offset must not be negative")
	ErrNoScope          = apperror.New(http.StatusForbidden, "caller has no office hierarchy")
)

// Level is the structural level of a row in m_group.
type Level int

const (
	LevelCenter Level = 1
	LevelGroup  Level = 2
)

// Status mirrors status_enum of m_group.
type Status int

const (
	StatusInvalid Status = 0
	StatusPending Status = 100
	StatusActive  Status = 300
	StatusClosed  Status = 600
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusClosed:
		return "closed"
	default:
		return "invalid"
	}
}

// RoleCode is the code whose values are the roles a client can hold in a group.
const RoleCode = "GROUPROLE"

// Group is a group-level row of m_group with its office, center and staff.
type Group struct {
	ID             int64
	Name           string
	ExternalID     *string
	Status         Status
	ActivationDate *time.Time
	OfficeID       int64
	OfficeName     string
	// OfficeHierarchy is the materialized path the caller scope is matched
	// against.
	OfficeHierarchy string
	CenterID        *int64
	CenterName      *string
	StaffID         *int64
	StaffName       *string
	Hierarchy       *string
}

// Lookup is the minimal projection used to reference a group elsewhere.
type Lookup struct {
	ID   int64
	Name string
}

// Center is a center offered as the parent of a new group.
type Center struct {
	ID       int64
	Name     string
	OfficeID int64
}

// SearchParameters holds the optional criteria of a group listing. A nil
// field adds no predicate.
type SearchParameters struct {
	OfficeID   *int64
	ExternalID *string
	Name       *string // matched as "contains"
	Hierarchy  *string // office hierarchy override
	Search     string  // free text over name and external id
	OrderBy    string
	SortOrder  string
	Limit      *int
	Offset     *int // ignored unless Limit is set
}

// TemplateRequest selects what a new-group template is built for.
type TemplateRequest struct {
	OfficeID                  *int64
	CenterGroup               bool
	StaffInSelectedOfficeOnly bool
}
