package group

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/nekogravitycat/group-read-service/internal/client"
	"github.com/nekogravitycat/group-read-service/internal/codevalue"
	"github.com/nekogravitycat/group-read-service/internal/office"
	"github.com/nekogravitycat/group-read-service/internal/pkg/pagination"
	"github.com/nekogravitycat/group-read-service/internal/staff"
)

// expect registers AssertExpectations on test cleanup.
func expect(t *testing.T, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type mockRepository struct {
	mock.Mock
}

func newMockRepository(t *testing.T) *mockRepository {
	m := &mockRepository{}
	expect(t, &m.Mock)
	return m
}

func (m *mockRepository) List(ctx context.Context, scope string, params SearchParameters) (*pagination.Page[*Group], error) {
	args := m.Called(ctx, scope, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[*Group]), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64, scope string) (*Group, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Group), args.Error(1)
}

func (m *mockRepository) ListLookup(ctx context.Context, officeID int64, scope *string) ([]*Lookup, error) {
	args := m.Called(ctx, officeID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Lookup), args.Error(1)
}

func (m *mockRepository) ListCentersForDropdown(ctx context.Context, officeID int64, scope string) ([]Center, error) {
	args := m.Called(ctx, officeID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Center), args.Error(1)
}

type mockOffices struct {
	mock.Mock
}

func (m *mockOffices) ListForDropdown(ctx context.Context, hierarchyPattern string) ([]office.Option, error) {
	args := m.Called(ctx, hierarchyPattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]office.Option), args.Error(1)
}

type mockStaff struct {
	mock.Mock
}

func (m *mockStaff) ListByOffice(ctx context.Context, officeID int64) ([]staff.Option, error) {
	args := m.Called(ctx, officeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]staff.Option), args.Error(1)
}

func (m *mockStaff) ListInOfficeHierarchy(ctx context.Context, officeID int64, loanOfficersOnly bool) ([]staff.Option, error) {
	args := m.Called(ctx, officeID, loanOfficersOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]staff.Option), args.Error(1)
}

type mockClients struct {
	mock.Mock
}

func (m *mockClients) ListForLookupByOffice(ctx context.Context, officeID int64) ([]client.Option, error) {
	args := m.Called(ctx, officeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.Option), args.Error(1)
}

type mockCodeValues struct {
	mock.Mock
}

func (m *mockCodeValues) ListByCode(ctx context.Context, codeName string) ([]codevalue.Value, error) {
	args := m.Called(ctx, codeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]codevalue.Value), args.Error(1)
}

// providerMocks holds one mock per template provider.
type providerMocks struct {
	centers *mockRepository
	offices *mockOffices
	staff   *mockStaff
	clients *mockClients
	codes   *mockCodeValues
}

func newProviderMocks(t *testing.T) *providerMocks {
	p := &providerMocks{
		centers: newMockRepository(t),
		offices: &mockOffices{},
		staff:   &mockStaff{},
		clients: &mockClients{},
		codes:   &mockCodeValues{},
	}
	expect(t, &p.offices.Mock)
	expect(t, &p.staff.Mock)
	expect(t, &p.clients.Mock)
	expect(t, &p.codes.Mock)
	return p
}

func (p *providerMocks) providers() Providers {
	return Providers{
		Centers:    p.centers,
		Offices:    p.offices,
		Staff:      p.staff,
		Clients:    p.clients,
		CodeValues: p.codes,
	}
}
