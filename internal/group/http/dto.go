package http

import (
	"time"

	"github.com/nekogravitycat/group-read-service/internal/client"
	"github.com/nekogravitycat/group-read-service/internal/codevalue"
	"github.com/nekogravitycat/group-read-service/internal/group"
	"github.com/nekogravitycat/group-read-service/internal/office"
	"github.com/nekogravitycat/group-read-service/internal/pkg/request"
	"github.com/nekogravitycat/group-read-service/internal/staff"
)

// ListGroupsRequest defines query parameters for listing groups.
type ListGroupsRequest struct {
	request.WindowParams
	OfficeID   *int64  `form:"office_id" binding:"omitempty,min=1"`
	ExternalID *string `form:"external_id"`
	Name       *string `form:"name"`
	Hierarchy  *string `form:"hierarchy"`
	Search     string  `form:"q"`
}

func (r *ListGroupsRequest) toSearchParameters() group.SearchParameters {
	return group.SearchParameters{
		OfficeID:   r.OfficeID,
		ExternalID: request.NonEmpty(r.ExternalID),
		Name:       request.NonEmpty(r.Name),
		Hierarchy:  request.NonEmpty(r.Hierarchy),
		Search:     r.Search,
		OrderBy:    r.OrderBy,
		SortOrder:  r.SortOrder,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
}

// TemplateRequest defines query parameters for the new-group template.
type TemplateRequest struct {
	OfficeID                  *int64 `form:"office_id" binding:"omitempty,min=1"`
	CenterGroup               bool   `form:"center_group"`
	StaffInSelectedOfficeOnly bool   `form:"staff_in_selected_office_only"`
}

// LookupRequest defines query parameters for the group lookup.
type LookupRequest struct {
	OfficeID int64 `form:"office_id" binding:"required,min=1"`
}

// Tag is an id and name pair referencing another entity.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTag(id *int64, name *string) *Tag {
	if id == nil {
		return nil
	}
	t := &Tag{ID: *id}
	if name != nil {
		t.Name = *name
	}
	return t
}

type StatusResponse struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
}

type GroupResponse struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	ExternalID      *string        `json:"external_id"`
	Status          StatusResponse `json:"status"`
	ActivationDate  *string        `json:"activation_date"`
	OfficeID        int64          `json:"office_id"`
	OfficeName      string         `json:"office_name"`
	OfficeHierarchy string         `json:"office_hierarchy"`
	Center          *Tag           `json:"center"`
	Staff           *Tag           `json:"staff"`
	Hierarchy       *string        `json:"hierarchy"`
}

func NewGroupResponse(g *group.Group) GroupResponse {
	resp := GroupResponse{
		ID:              g.ID,
		Name:            g.Name,
		ExternalID:      g.ExternalID,
		Status:          StatusResponse{ID: int(g.Status), Code: g.Status.String()},
		OfficeID:        g.OfficeID,
		OfficeName:      g.OfficeName,
		OfficeHierarchy: g.OfficeHierarchy,
		Center:          newTag(g.CenterID, g.CenterName),
		Staff:           newTag(g.StaffID, g.StaffName),
		Hierarchy:       g.Hierarchy,
	}
	if g.ActivationDate != nil {
		d := g.ActivationDate.Format(time.DateOnly)
		resp.ActivationDate = &d
	}
	return resp
}

type LookupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CenterOption struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OfficeID int64  `json:"office_id"`
}

type OfficeOption struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	NameDecorated string  `json:"name_decorated"`
	ExternalID    *string `json:"external_id"`
	Hierarchy     string  `json:"hierarchy"`
}

type StaffOption struct {
	ID            int64  `json:"id"`
	DisplayName   string `json:"display_name"`
	OfficeID      int64  `json:"office_id"`
	OfficeName    string `json:"office_name"`
	IsLoanOfficer bool   `json:"is_loan_officer"`
}

type ClientOption struct {
	ID          int64  `json:"id"`
	AccountNo   string `json:"account_no"`
	DisplayName string `json:"display_name"`
	OfficeID    int64  `json:"office_id"`
}

type RoleOption struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// TemplateResponse renders an absent option collection as null.
type TemplateResponse struct {
	OfficeID      int64          `json:"office_id"`
	Center        *Tag           `json:"center"`
	Staff         *Tag           `json:"staff"`
	CenterOptions []CenterOption `json:"center_options"`
	OfficeOptions []OfficeOption `json:"office_options"`
	StaffOptions  []StaffOption  `json:"staff_options"`
	ClientOptions []ClientOption `json:"client_options"`
	RoleOptions   []RoleOption   `json:"role_options"`
}

// mapOptions converts present options; absent options stay nil.
func mapOptions[T, R any](opts group.Options[T], fn func(T) R) []R {
	if !opts.Present() {
		return nil
	}
	items := opts.Items()
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

func NewTemplateResponse(t *group.Template) TemplateResponse {
	return TemplateResponse{
		OfficeID: t.OfficeID,
		Center:   newTag(t.CenterID, t.CenterName),
		Staff:    newTag(t.StaffID, t.StaffName),
		CenterOptions: mapOptions(t.CenterOptions, func(c group.Center) CenterOption {
			return CenterOption{ID: c.ID, Name: c.Name, OfficeID: c.OfficeID}
		}),
		OfficeOptions: mapOptions(t.OfficeOptions, func(o office.Option) OfficeOption {
			return OfficeOption{
				ID:            o.ID,
				Name:          o.Name,
				NameDecorated: o.NameDecorated(),
				ExternalID:    o.ExternalID,
				Hierarchy:     o.Hierarchy,
			}
		}),
		StaffOptions: mapOptions(t.StaffOptions, func(s staff.Option) StaffOption {
			return StaffOption{
				ID:            s.ID,
				DisplayName:   s.DisplayName,
				OfficeID:      s.OfficeID,
				OfficeName:    s.OfficeName,
				IsLoanOfficer: s.IsLoanOfficer,
			}
		}),
		ClientOptions: mapOptions(t.ClientOptions, func(c client.Option) ClientOption {
			return ClientOption{ID: c.ID, AccountNo: c.AccountNo, DisplayName: c.DisplayName, OfficeID: c.OfficeID}
		}),
		RoleOptions: mapOptions(t.RoleOptions, func(v codevalue.Value) RoleOption {
			return RoleOption{ID: v.ID, Name: v.Name, Position: v.Position}
		}),
	}
}
