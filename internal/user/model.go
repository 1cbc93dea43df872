package user

import (
	"net/http"

	"github.com/nekogravitycat/group-read-service/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusUnauthorized, "user not found")
	ErrInactiveUser = apperror.New(http.StatusUnauthorized, "user is inactive")
)

// User is an application user together with the office it belongs to.
type User struct {
	ID              int64
	Username        string
	OfficeID        int64
	OfficeName      string
	OfficeHierarchy string
	Enabled         bool
	Deleted         bool
}
