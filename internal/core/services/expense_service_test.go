package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trip_ledger_app/internal/core/services"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockTripRepo    *MockTripRepository
	mockAuthorizer  *MockTripAuthorizer
	feed            *services.ExpenseFeed
	service         portssvc.ExpenseSvcFacade
	ctx             context.Context
	trip            *domain.Trip
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockAuthorizer = new(MockTripAuthorizer)
	suite.feed = services.NewExpenseFeed(nil)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockTripRepo, suite.mockAuthorizer, suite.feed)
	suite.ctx = context.Background()

	// Ana administers the trip, Ben and Cy are members, Dee has not answered yet.
	suite.trip = &domain.Trip{
		TripID:       "trip-1",
		Name:         "Lisbon",
		Budget:       dec("300"),
		CurrencyCode: "EUR",
		Members: []domain.TripMember{
			member("trip-1", "A", "Ana", domain.RoleAdmin, domain.MemberAccepted),
			member("trip-1", "B", "Ben", domain.RoleMember, domain.MemberAccepted),
			member("trip-1", "C", "Cy", domain.RoleMember, domain.MemberAccepted),
			member("trip-1", "D", "Dee", domain.RoleMember, domain.MemberPending),
		},
	}
}

func (suite *ExpenseServiceTestSuite) allowMember(userID string) {
	suite.mockAuthorizer.On("AuthorizeTripAction", mock.Anything, userID, "trip-1", domain.RoleMember).Return(nil)
	suite.mockTripRepo.On("FindTripByID", mock.Anything, "trip-1").Return(suite.trip, nil)
}

func (suite *ExpenseServiceTestSuite) createRequest() dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Title:       "Dinner",
		Amount:      dec("100"),
		Category:    domain.CategoryFood,
		ExpenseDate: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *ExpenseServiceTestSuite) storedExpense(splitType domain.SplitType, amount string, splits ...domain.ExpenseSplit) *domain.Expense {
	return &domain.Expense{
		ExpenseID:    "exp-1",
		TripID:       "trip-1",
		Title:        "Taxi",
		Amount:       dec(amount),
		CurrencyCode: "EUR",
		Category:     domain.CategoryTransport,
		PaidBy:       "B",
		PaidByName:   "Ben",
		SplitType:    splitType,
		SplitAmong:   splits,
		AuditFields:  domain.AuditFields{CreatedBy: "B", LastUpdatedBy: "B"},
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_EqualSplitOverAcceptedMembers() {
	suite.allowMember("A")
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(suite.ctx, "trip-1", suite.createRequest(), "A")

	suite.Require().NoError(err)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal("EUR", expense.CurrencyCode)
	suite.Equal("A", expense.PaidBy)
	suite.Equal("Ana", expense.PaidByName)
	suite.Equal(domain.SplitEqual, expense.SplitType)
	suite.Require().Len(expense.SplitAmong, 3)
	for i, want := range []string{"A", "B", "C"} {
		suite.Equal(want, expense.SplitAmong[i].UserID)
		suite.True(dec("33.33").Equal(expense.SplitAmong[i].Amount))
		suite.False(expense.SplitAmong[i].Paid)
	}
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ExplicitParticipantsAndPayer() {
	suite.allowMember("A")
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.Anything).Return(nil).Once()

	req := suite.createRequest()
	req.Amount = dec("90")
	req.PaidBy = "B"
	req.Participants = []string{"B", "D"}

	expense, err := suite.service.CreateExpense(suite.ctx, "trip-1", req, "A")

	suite.Require().NoError(err)
	suite.Equal("B", expense.PaidBy)
	suite.Equal("A", expense.CreatedBy)
	suite.Require().Len(expense.SplitAmong, 2)
	suite.Equal("Dee", expense.SplitAmong[1].UserName)
	suite.True(dec("45").Equal(expense.SplitAmong[1].Amount))
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_FullSplit() {
	suite.allowMember("A")
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.Anything).Return(nil).Once()

	req := suite.createRequest()
	req.SplitType = domain.SplitFull
	req.Participants = []string{"C"}

	expense, err := suite.service.CreateExpense(suite.ctx, "trip-1", req, "A")

	suite.Require().NoError(err)
	suite.Require().Len(expense.SplitAmong, 1)
	suite.Equal("C", expense.SplitAmong[0].UserID)
	suite.True(dec("100").Equal(expense.SplitAmong[0].Amount))
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CustomSplit() {
	suite.allowMember("A")
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.Anything).Return(nil).Once()

	req := suite.createRequest()
	req.SplitType = domain.SplitCustom
	req.Splits = []dto.SplitShareRequest{{UserID: "A", Amount: dec("70")}, {UserID: "B", Amount: dec("30")}}

	expense, err := suite.service.CreateExpense(suite.ctx, "trip-1", req, "A")

	suite.Require().NoError(err)
	suite.Equal(domain.SplitCustom, expense.SplitType)
	suite.Equal("Ben", expense.SplitAmong[1].UserName)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ValidationErrors() {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateExpenseRequest)
		wantErr error
	}{
		{name: "currency mismatch", mutate: func(r *dto.CreateExpenseRequest) { r.CurrencyCode = "usd" }, wantErr: services.ErrCurrencyMismatch},
		{name: "negative amount", mutate: func(r *dto.CreateExpenseRequest) { r.Amount = dec("-1") }, wantErr: apperrors.ErrValidation},
		{name: "fraction of a cent", mutate: func(r *dto.CreateExpenseRequest) { r.Amount = dec("10.005") }, wantErr: apperrors.ErrValidation},
		{name: "blank title", mutate: func(r *dto.CreateExpenseRequest) { r.Title = " " }, wantErr: apperrors.ErrValidation},
		{name: "unknown category", mutate: func(r *dto.CreateExpenseRequest) { r.Category = "gifts" }, wantErr: apperrors.ErrValidation},
		{name: "payer outside trip", mutate: func(r *dto.CreateExpenseRequest) { r.PaidBy = "Z" }, wantErr: apperrors.ErrValidation},
		{name: "participant outside trip", mutate: func(r *dto.CreateExpenseRequest) { r.Participants = []string{"A", "Z"} }, wantErr: apperrors.ErrValidation},
		{name: "duplicate participant", mutate: func(r *dto.CreateExpenseRequest) { r.Participants = []string{"A", "A"} }, wantErr: apperrors.ErrValidation},
		{
			name: "full split with two targets",
			mutate: func(r *dto.CreateExpenseRequest) {
				r.SplitType = domain.SplitFull
				r.Participants = []string{"A", "B"}
			},
			wantErr: services.ErrFullSplitTarget,
		},
		{
			name: "custom shares do not add up",
			mutate: func(r *dto.CreateExpenseRequest) {
				r.SplitType = domain.SplitCustom
				r.Splits = []dto.SplitShareRequest{{UserID: "A", Amount: dec("50")}, {UserID: "B", Amount: dec("40")}}
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "custom without shares",
			mutate: func(r *dto.CreateExpenseRequest) {
				r.SplitType = domain.SplitCustom
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	suite.allowMember("A")
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.createRequest()
			tt.mutate(&req)

			expense, err := suite.service.CreateExpense(suite.ctx, "trip-1", req, "A")

			suite.Nil(expense)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NotAMember() {
	suite.mockAuthorizer.On("AuthorizeTripAction", mock.Anything, "Z", "trip-1", domain.RoleMember).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateExpense(suite.ctx, "trip-1", suite.createRequest(), "Z")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindTripByID", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_PublishesToSubscribers() {
	suite.allowMember("A")
	suite.mockExpenseRepo.On("SaveExpense", mock.Anything, mock.Anything).Return(nil).Once()
	stored := []domain.Expense{*suite.storedExpense(domain.SplitFull, "10", domain.ExpenseSplit{UserID: "A", Amount: dec("10")})}
	suite.mockExpenseRepo.On("ListExpensesByTrip", mock.Anything, "trip-1").Return(stored, nil).Once()

	updates, cancel := suite.feed.Subscribe("trip-1")
	defer cancel()

	_, err := suite.service.CreateExpense(suite.ctx, "trip-1", suite.createRequest(), "A")
	suite.Require().NoError(err)

	select {
	case list := <-updates:
		suite.Equal(stored, list)
	case <-time.After(time.Second):
		suite.Fail("no update published")
	}
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_AmountChangeResplitsAndKeepsPaidFlags() {
	suite.allowMember("B")
	stored := suite.storedExpense(domain.SplitEqual, "90",
		domain.ExpenseSplit{UserID: "A", UserName: "Ana", Amount: dec("30"), Paid: true},
		domain.ExpenseSplit{UserID: "B", UserName: "Ben", Amount: dec("30")},
		domain.ExpenseSplit{UserID: "C", UserName: "Cy", Amount: dec("30")},
	)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(suite.ctx, "trip-1", "exp-1", dto.UpdateExpenseRequest{Amount: decPtr("100")}, "B")

	suite.Require().NoError(err)
	suite.True(dec("100").Equal(updated.Amount))
	suite.Require().Len(updated.SplitAmong, 3)
	for _, s := range updated.SplitAmong {
		suite.True(dec("33.33").Equal(s.Amount))
	}
	suite.True(updated.SplitAmong[0].Paid)
	suite.False(updated.SplitAmong[1].Paid)
	suite.Equal("B", updated.LastUpdatedBy)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_CustomNeedsNewShares() {
	suite.allowMember("B")
	stored := suite.storedExpense(domain.SplitCustom, "90",
		domain.ExpenseSplit{UserID: "A", Amount: dec("60")},
		domain.ExpenseSplit{UserID: "B", Amount: dec("30")},
	)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()

	_, err := suite.service.UpdateExpense(suite.ctx, "trip-1", "exp-1", dto.UpdateExpenseRequest{Amount: decPtr("100")}, "B")

	suite.ErrorIs(err, services.ErrCustomSplitsNeeded)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NewSharesMakeItCustom() {
	suite.allowMember("A")
	stored := suite.storedExpense(domain.SplitEqual, "90",
		domain.ExpenseSplit{UserID: "A", Amount: dec("45")},
		domain.ExpenseSplit{UserID: "B", Amount: dec("45")},
	)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpense", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(suite.ctx, "trip-1", "exp-1", dto.UpdateExpenseRequest{
		Splits: []dto.SplitShareRequest{{UserID: "A", Amount: dec("80")}, {UserID: "C", Amount: dec("10")}},
	}, "A")

	suite.Require().NoError(err)
	suite.Equal(domain.SplitCustom, updated.SplitType)
	suite.Equal("Cy", updated.SplitAmong[1].UserName)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_OtherMemberForbidden() {
	suite.allowMember("C")
	stored := suite.storedExpense(domain.SplitEqual, "90", domain.ExpenseSplit{UserID: "B", Amount: dec("90")})
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()

	title := "Cab"
	_, err := suite.service.UpdateExpense(suite.ctx, "trip-1", "exp-1", dto.UpdateExpenseRequest{Title: &title}, "C")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_AdminMayDelete() {
	suite.allowMember("A")
	stored := suite.storedExpense(domain.SplitEqual, "90", domain.ExpenseSplit{UserID: "B", Amount: dec("90")})
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", mock.Anything, "trip-1", "exp-1").Return(nil).Once()

	err := suite.service.DeleteExpense(suite.ctx, "trip-1", "exp-1", "A")

	suite.NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestMarkSplitPaid() {
	suite.allowMember("C")
	stored := suite.storedExpense(domain.SplitEqual, "60",
		domain.ExpenseSplit{UserID: "B", Amount: dec("30")},
		domain.ExpenseSplit{UserID: "C", Amount: dec("30")},
	)
	suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()
	suite.mockExpenseRepo.On("SetSplitPaid", mock.Anything, "exp-1", "C", true, "C", mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.MarkSplitPaid(suite.ctx, "trip-1", "exp-1", "C", true, "C")

	suite.Require().NoError(err)
	suite.True(updated.SplitAmong[1].Paid)
	suite.False(updated.SplitAmong[0].Paid)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestMarkSplitPaid_Errors() {
	suite.Run("no share", func() {
		suite.SetupTest()
		suite.allowMember("B")
		stored := suite.storedExpense(domain.SplitEqual, "30", domain.ExpenseSplit{UserID: "B", Amount: dec("30")})
		suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()

		_, err := suite.service.MarkSplitPaid(suite.ctx, "trip-1", "exp-1", "C", true, "B")
		suite.ErrorIs(err, apperrors.ErrNotFound)
	})

	suite.Run("someone else's share", func() {
		suite.SetupTest()
		suite.allowMember("C")
		stored := suite.storedExpense(domain.SplitEqual, "60",
			domain.ExpenseSplit{UserID: "A", Amount: dec("30")},
			domain.ExpenseSplit{UserID: "B", Amount: dec("30")},
		)
		stored.PaidBy = "A"
		suite.mockExpenseRepo.On("FindExpenseByID", mock.Anything, "trip-1", "exp-1").Return(stored, nil).Once()

		_, err := suite.service.MarkSplitPaid(suite.ctx, "trip-1", "exp-1", "B", true, "C")
		suite.ErrorIs(err, apperrors.ErrForbidden)
		suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SetSplitPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseSummary() {
	suite.allowMember("B")
	expenses := []domain.Expense{{
		Amount:     dec("90"),
		PaidBy:     "A",
		PaidByName: "Ana",
		Category:   domain.CategoryFood,
		SplitAmong: []domain.ExpenseSplit{
			{UserID: "A", UserName: "Ana", Amount: dec("30")},
			{UserID: "B", UserName: "Ben", Amount: dec("30")},
			{UserID: "C", UserName: "Cy", Amount: dec("30")},
		},
	}}
	suite.mockExpenseRepo.On("ListExpensesByTrip", mock.Anything, "trip-1").Return(expenses, nil).Once()

	summary, err := suite.service.GetExpenseSummary(suite.ctx, "trip-1", "B")

	suite.Require().NoError(err)
	suite.True(dec("90").Equal(summary.TotalSpent))
	suite.True(dec("210").Equal(summary.BudgetRemaining))
	suite.True(dec("30").Equal(summary.PercentageUsed))
	suite.Len(summary.ByMember, 3)
}

func (suite *ExpenseServiceTestSuite) TestGetSettlements() {
	suite.allowMember("A")
	split := func(userID, amount string) domain.ExpenseSplit {
		return domain.ExpenseSplit{UserID: userID, UserName: userID, Amount: dec(amount)}
	}
	expenses := []domain.Expense{
		{Amount: dec("100"), PaidBy: "A", PaidByName: "A", Category: domain.CategoryFood,
			SplitAmong: []domain.ExpenseSplit{split("A", "25"), split("B", "25"), split("C", "25"), split("D", "25")}},
		{Amount: dec("40"), PaidBy: "B", PaidByName: "B", Category: domain.CategoryFood,
			SplitAmong: []domain.ExpenseSplit{split("C", "20"), split("D", "20")}},
	}
	suite.mockExpenseRepo.On("ListExpensesByTrip", mock.Anything, "trip-1").Return(expenses, nil).Once()

	settlements, err := suite.service.GetSettlements(suite.ctx, "trip-1", "A")

	suite.Require().NoError(err)
	suite.Require().Len(settlements, 3)
	suite.Equal([]string{"C", "A"}, []string{settlements[0].From, settlements[0].To})
	suite.True(dec("45").Equal(settlements[0].Amount))
	suite.Equal([]string{"D", "A"}, []string{settlements[1].From, settlements[1].To})
	suite.True(dec("30").Equal(settlements[1].Amount))
	suite.Equal([]string{"D", "B"}, []string{settlements[2].From, settlements[2].To})
	suite.True(dec("15").Equal(settlements[2].Amount))
}

func (suite *ExpenseServiceTestSuite) TestPreviewEqualSplit() {
	suite.allowMember("A")

	splits, err := suite.service.PreviewEqualSplit(suite.ctx, "trip-1", dec("200"), nil, "A")
	suite.Require().NoError(err)
	suite.Len(splits, 3)
	suite.True(dec("66.67").Equal(splits[0].Amount))

	_, err = suite.service.PreviewEqualSplit(suite.ctx, "trip-1", dec("-5"), nil, "A")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_ClampsLimit() {
	suite.mockAuthorizer.On("AuthorizeTripAction", mock.Anything, "A", "trip-1", domain.RoleMember).Return(nil)
	token := "next"
	suite.mockExpenseRepo.On("ListExpensesByTripPage", mock.Anything, "trip-1", 50, (*string)(nil)).Return([]domain.Expense{}, token, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByTripPage", mock.Anything, "trip-1", 200, &token).Return([]domain.Expense{}, nil, nil).Once()

	first, err := suite.service.ListExpenses(suite.ctx, "trip-1", "A", dto.ListExpensesParams{})
	suite.Require().NoError(err)
	suite.Require().NotNil(first.NextToken)
	suite.Equal("next", *first.NextToken)

	second, err := suite.service.ListExpenses(suite.ctx, "trip-1", "A", dto.ListExpensesParams{Limit: 1000, NextToken: &token})
	suite.Require().NoError(err)
	suite.Nil(second.NextToken)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestWatchLedger() {
	suite.allowMember("A")
	initial := []domain.Expense{{
		Amount: dec("60"), PaidBy: "A", PaidByName: "Ana", Category: domain.CategoryFood,
		SplitAmong: []domain.ExpenseSplit{{UserID: "A", Amount: dec("30")}, {UserID: "B", Amount: dec("30")}},
	}}
	suite.mockExpenseRepo.On("ListExpensesByTrip", mock.Anything, "trip-1").Return(initial, nil).Once()

	ctx, cancel := context.WithCancel(suite.ctx)
	snapshots, err := suite.service.WatchLedger(ctx, "trip-1", "A")
	suite.Require().NoError(err)

	first := <-snapshots
	suite.Equal("trip-1", first.TripID)
	suite.Equal("EUR", first.CurrencyCode)
	suite.Equal(1, first.ExpenseCount)
	suite.Require().Len(first.Settlements, 1)
	suite.Equal("B", first.Settlements[0].From)

	suite.feed.Publish("trip-1", nil)
	select {
	case second := <-snapshots:
		suite.Equal(0, second.ExpenseCount)
		suite.Empty(second.Settlements)
		suite.True(dec("300").Equal(second.Summary.BudgetRemaining))
	case <-time.After(time.Second):
		suite.Fail("no snapshot after publish")
	}

	cancel()
	select {
	case _, open := <-snapshots:
		suite.False(open)
	case <-time.After(time.Second):
		suite.Fail("stream not closed after cancel")
	}
	suite.Eventually(func() bool { return !suite.feed.HasSubscribers("trip-1") }, time.Second, 10*time.Millisecond)
}

func (suite *ExpenseServiceTestSuite) TestWatchLedger_WithoutFeed() {
	svc := services.NewExpenseService(suite.mockExpenseRepo, suite.mockTripRepo, suite.mockAuthorizer, nil)

	_, err := svc.WatchLedger(suite.ctx, "trip-1", "A")

	suite.ErrorIs(err, services.ErrFeedUnavailable)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
