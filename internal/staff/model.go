package staff

// Option is a staff member offered for selection.
type Option struct {
	ID            int64
	DisplayName   string
	OfficeID      int64
	OfficeName    string
	IsLoanOfficer bool
}
