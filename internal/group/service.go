package group

import (
	"context"

	"go.uber.org/zap"

	"github.com/nekogravitycat/group-read-service/internal/auth"
	"github.com/nekogravitycat/group-read-service/internal/pkg/pagination"
)

// Service answers read queries about groups on behalf of a caller.
type Service interface {
	RetrieveTemplate(ctx context.Context, caller auth.Caller, req TemplateRequest) (*Template, error)
	RetrieveAll(ctx context.Context, caller auth.Caller, params SearchParameters) (*pagination.Page[*Group], error)
	RetrieveOne(ctx context.Context, caller auth.Caller, id int64) (*Group, error)
	RetrieveGroupsForLookup(ctx context.Context, caller auth.Caller, officeID int64) ([]*Lookup, error)
}

type service struct {
	repo         Repository
	providers    Providers
	logger       *zap.Logger
	scopeLookups bool
}

// NewService creates a group Service. When scopeLookups is false, lookups
// are not restricted to the caller's hierarchy.
func NewService(repo Repository, providers Providers, logger *zap.Logger, scopeLookups bool) Service {
	if !scopeLookups {
		logger.Warn("group lookups are not restricted to the caller's office hierarchy")
	}
	return &service{
		repo:         repo,
		providers:    providers,
		logger:       logger,
		scopeLookups: scopeLookups,
	}
}

// scopeFor derives the hierarchy pattern every scoped query is filtered by.
func scopeFor(caller auth.Caller) (string, error) {
	if caller.OfficeHierarchy == "" {
		return "", ErrNoScope
	}
	return HierarchyPattern(caller.OfficeHierarchy), nil
}

func (s *service) RetrieveTemplate(ctx context.Context, caller auth.Caller, req TemplateRequest) (*Template, error) {
	if _, err := scopeFor(caller); err != nil {
		return nil, err
	}
	return assembleTemplate(ctx, s.providers, caller, req)
}

func (s *service) RetrieveAll(ctx context.Context, caller auth.Caller, params SearchParameters) (*pagination.Page[*Group], error) {
	scope, err := scopeFor(caller)
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if params.Offset != nil && params.Limit == nil {
		s.logger.Debug("offset ignored without limit", zap.Int("offset", *params.Offset))
	}

	return s.repo.List(ctx, scope, params)
}

func (s *service) RetrieveOne(ctx context.Context, caller auth.Caller, id int64) (*Group, error) {
	scope, err := scopeFor(caller)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id, scope)
}

func (s *service) RetrieveGroupsForLookup(ctx context.Context, caller auth.Caller, officeID int64) ([]*Lookup, error) {
	if !s.scopeLookups {
		return s.repo.ListLookup(ctx, officeID, nil)
	}

	scope, err := scopeFor(caller)
	if err != nil {
		return nil, err
	}
	return s.repo.ListLookup(ctx, officeID, &scope)
}
