package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trip_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock TripRepository ---
type MockTripRepository struct {
	mock.Mock
}

var _ portsrepo.TripRepositoryFacade = (*MockTripRepository)(nil)

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTripsByUserID(ctx context.Context, userID string) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

func (m *MockTripRepository) AddTripMember(ctx context.Context, member domain.TripMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTripRepository) FindTripMember(ctx context.Context, tripID, userID string) (*domain.TripMember, error) {
	args := m.Called(ctx, tripID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripMember), args.Error(1)
}

func (m *MockTripRepository) UpdateTripMember(ctx context.Context, member domain.TripMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTripRepository) RemoveTripMember(ctx context.Context, tripID, userID string) error {
	args := m.Called(ctx, tripID, userID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, tripID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, tripID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByTrip(ctx context.Context, tripID string) ([]domain.Expense, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByTripPage(ctx context.Context, tripID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, tripID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Expense), returnedNextToken, args.Error(2)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, tripID, expenseID string) error {
	args := m.Called(ctx, tripID, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) SetSplitPaid(ctx context.Context, expenseID, userID string, paid bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, expenseID, userID, paid, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock ActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

var _ portsrepo.ActivityRepositoryFacade = (*MockActivityRepository)(nil)

func (m *MockActivityRepository) FindActivityByID(ctx context.Context, tripID, activityID string) (*domain.Activity, error) {
	args := m.Called(ctx, tripID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListActivitiesByTrip(ctx context.Context, tripID string) ([]domain.Activity, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteActivity(ctx context.Context, tripID, activityID string) error {
	args := m.Called(ctx, tripID, activityID)
	return args.Error(0)
}

// --- Mock TripAuthorizer ---
type MockTripAuthorizer struct {
	mock.Mock
}

var _ portssvc.TripAuthorizerSvc = (*MockTripAuthorizer)(nil)

func (m *MockTripAuthorizer) AuthorizeTripAction(ctx context.Context, userID, tripID string, requiredRole domain.TripRole) error {
	args := m.Called(ctx, userID, tripID, requiredRole)
	return args.Error(0)
}

// --- Fixtures ---

func member(tripID, userID, name string, role domain.TripRole, status domain.MemberStatus) domain.TripMember {
	return domain.TripMember{
		TripID:      tripID,
		UserID:      userID,
		Email:       userID + "@example.com",
		DisplayName: name,
		Role:        role,
		Status:      status,
		JoinedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}
