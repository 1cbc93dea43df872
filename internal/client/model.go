package client

// StatusActive is the status_enum value of an active client.
const StatusActive = 300

// Option is a client offered for selection when composing a group.
type Option struct {
	ID          int64
	AccountNo   string
	DisplayName string
	OfficeID    int64
}
