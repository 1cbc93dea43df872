package group

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// groupColumns is the column list scanGroup expects, in order.
var groupColumns = []string{
	groupTable.col("id"),
	groupTable.col("display_name"),
	groupTable.col("external_id"),
	groupTable.col("status_enum"),
	groupTable.col("activation_date"),
	groupTable.col("office_id"),
	officeTable.col("name"),
	officeTable.col("hierarchy"),
	groupTable.col("parent_id"),
	centerTable.col("display_name"),
	groupTable.col("staff_id"),
	staffTable.col("display_name"),
	groupTable.col("hierarchy"),
}

// groupRow holds one scanned row before nullable columns are resolved.
type groupRow struct {
	ID              int64
	Name            string
	ExternalID      pgtype.Text
	Status          int32
	ActivationDate  pgtype.Date
	OfficeID        int64
	OfficeName      string
	OfficeHierarchy string
	CenterID        pgtype.Int8
	CenterName      pgtype.Text
	StaffID         pgtype.Int8
	StaffName       pgtype.Text
	Hierarchy       pgtype.Text
}

func (r groupRow) toGroup() *Group {
	return &Group{
		ID:              r.ID,
		Name:            r.Name,
		ExternalID:      textPtr(r.ExternalID),
		Status:          Status(r.Status),
		ActivationDate:  datePtr(r.ActivationDate),
		OfficeID:        r.OfficeID,
		OfficeName:      r.OfficeName,
		OfficeHierarchy: r.OfficeHierarchy,
		CenterID:        int8Ptr(r.CenterID),
		CenterName:      textPtr(r.CenterName),
		StaffID:         int8Ptr(r.StaffID),
		StaffName:       textPtr(r.StaffName),
		Hierarchy:       textPtr(r.Hierarchy),
	}
}

// scanGroup maps a row selected with groupColumns.
func scanGroup(row pgx.Row) (*Group, error) {
	var r groupRow
	if err := row.Scan(
		&r.ID, &r.Name, &r.ExternalID, &r.Status, &r.ActivationDate,
		&r.OfficeID, &r.OfficeName, &r.OfficeHierarchy,
		&r.CenterID, &r.CenterName, &r.StaffID, &r.StaffName,
		&r.Hierarchy,
	); err != nil {
		return nil, err
	}
	return r.toGroup(), nil
}

var lookupColumns = []string{groupTable.col("id"), groupTable.col("display_name")}

func scanLookup(row pgx.Row) (*Lookup, error) {
	var l Lookup
	if err := row.Scan(&l.ID, &l.Name); err != nil {
		return nil, err
	}
	return &l, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func int8Ptr(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	return &i.Int64
}

func datePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	return &d.Time
}
