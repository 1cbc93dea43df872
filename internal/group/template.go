package group

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nekogravitycat/group-read-service/internal/auth"
	"github.com/nekogravitycat/group-read-service/internal/client"
	"github.com/nekogravitycat/group-read-service/internal/codevalue"
	"github.com/nekogravitycat/group-read-service/internal/office"
	"github.com/nekogravitycat/group-read-service/internal/staff"
)

// Template carries the defaults and option lists for creating a new group.
// The selection fields are always nil: a template never reflects an
// existing group.
type Template struct {
	OfficeID   int64
	CenterID   *int64
	CenterName *string
	StaffID    *int64
	StaffName  *string

	CenterOptions Options[Center]
	OfficeOptions Options[office.Option]
	StaffOptions  Options[staff.Option]
	ClientOptions Options[client.Option]
	RoleOptions   Options[codevalue.Value]
}

// CenterProvider lists centers a new group may be attached to.
type CenterProvider interface {
	ListCentersForDropdown(ctx context.Context, officeID int64, scope string) ([]Center, error)
}

// OfficeProvider lists offices within a hierarchy pattern.
type OfficeProvider interface {
	ListForDropdown(ctx context.Context, hierarchyPattern string) ([]office.Option, error)
}

// StaffProvider lists staff of one office, or of one office and its ancestors.
type StaffProvider interface {
	ListByOffice(ctx context.Context, officeID int64) ([]staff.Option, error)
	ListInOfficeHierarchy(ctx context.Context, officeID int64, loanOfficersOnly bool) ([]staff.Option, error)
}

// ClientProvider lists the clients of one office.
type ClientProvider interface {
	ListForLookupByOffice(ctx context.Context, officeID int64) ([]client.Option, error)
}

// CodeValueProvider lists the values of a code.
type CodeValueProvider interface {
	ListByCode(ctx context.Context, codeName string) ([]codevalue.Value, error)
}

// Providers bundles the option sources a template is assembled from.
type Providers struct {
	Centers    CenterProvider
	Offices    OfficeProvider
	Staff      StaffProvider
	Clients    ClientProvider
	CodeValues CodeValueProvider
}

// assembleTemplate fetches every option list concurrently. The first
// provider error cancels the remaining fetches and is returned unchanged.
func assembleTemplate(ctx context.Context, p Providers, caller auth.Caller, req TemplateRequest) (*Template, error) {
	officeID := DefaultOfficeID(req.OfficeID, caller)
	scope := HierarchyPattern(caller.OfficeHierarchy)

	var (
		centers []Center
		offices []office.Option
		staffs  []staff.Option
		clients []client.Option
		roles   []codevalue.Value
	)

	g, gctx := errgroup.WithContext(ctx)

	if req.CenterGroup {
		g.Go(func() (err error) {
			centers, err = p.Centers.ListCentersForDropdown(gctx, officeID, scope)
			return err
		})
	}
	g.Go(func() (err error) {
		offices, err = p.Offices.ListForDropdown(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		if req.StaffInSelectedOfficeOnly {
			staffs, err = p.Staff.ListByOffice(gctx, officeID)
		} else {
			staffs, err = p.Staff.ListInOfficeHierarchy(gctx, officeID, false)
		}
		return err
	})
	g.Go(func() (err error) {
		clients, err = p.Clients.ListForLookupByOffice(gctx, officeID)
		return err
	})
	g.Go(func() (err error) {
		roles, err = p.CodeValues.ListByCode(gctx, RoleCode)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Template{
		OfficeID:      officeID,
		CenterOptions: OptionsOf(centers),
		OfficeOptions: OptionsOf(offices),
		StaffOptions:  OptionsOf(staffs),
		ClientOptions: OptionsOf(clients),
		RoleOptions:   OptionsOf(roles),
	}, nil
}
