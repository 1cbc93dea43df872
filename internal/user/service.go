package user

import (
	"context"

	"github.com/nekogravitycat/group-read-service/internal/auth"
)

// Service resolves authenticated users into callers.
type Service interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	ResolveCaller(ctx context.Context, id int64) (auth.Caller, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// ResolveCaller loads the user and exposes its office scope. Deleted and
// disabled users cannot act as callers.
func (s *service) ResolveCaller(ctx context.Context, id int64) (auth.Caller, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return auth.Caller{}, err
	}
	if u.Deleted || !u.Enabled {
		return auth.Caller{}, ErrInactiveUser
	}

	return auth.Caller{
		UserID:          u.ID,
		Username:        u.Username,
		OfficeID:        u.OfficeID,
		OfficeHierarchy: u.OfficeHierarchy,
	}, nil
}
