package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/SscSPs/trip_ledger_app/internal/handlers"
	"github.com/SscSPs/trip_ledger_app/internal/middleware"
	"github.com/SscSPs/trip_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) GetTrip(ctx context.Context, tripID, requestingUserID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) ListUserTrips(ctx context.Context, userID string) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}
func (m *MockTripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creator domain.TripMember) (*domain.Trip, error) {
	args := m.Called(ctx, req, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, requestingUserID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) DeleteTrip(ctx context.Context, tripID, requestingUserID string) error {
	args := m.Called(ctx, tripID, requestingUserID)
	return args.Error(0)
}
func (m *MockTripService) AddTripMember(ctx context.Context, tripID string, req dto.AddTripMemberRequest, requestingUserID string) (*domain.TripMember, error) {
	args := m.Called(ctx, tripID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripMember), args.Error(1)
}
func (m *MockTripService) RemoveTripMember(ctx context.Context, tripID, targetUserID, requestingUserID string) error {
	args := m.Called(ctx, tripID, targetUserID, requestingUserID)
	return args.Error(0)
}
func (m *MockTripService) UpdateMemberRole(ctx context.Context, tripID, targetUserID string, role domain.TripRole, requestingUserID string) (*domain.TripMember, error) {
	args := m.Called(ctx, tripID, targetUserID, role, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripMember), args.Error(1)
}
func (m *MockTripService) RespondToInvitation(ctx context.Context, tripID, userID string, accept bool) (*domain.TripMember, error) {
	args := m.Called(ctx, tripID, userID, accept)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripMember), args.Error(1)
}
func (m *MockTripService) AuthorizeTripAction(ctx context.Context, userID, tripID string, requiredRole domain.TripRole) error {
	args := m.Called(ctx, userID, tripID, requiredRole)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpense(ctx context.Context, tripID, expenseID, requestingUserID string) (*domain.Expense, error) {
	args := m.Called(ctx, tripID, expenseID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, tripID, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	args := m.Called(ctx, tripID, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListExpensesResponse), args.Error(1)
}
func (m *MockExpenseService) CreateExpense(ctx context.Context, tripID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	args := m.Called(ctx, tripID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, tripID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	args := m.Called(ctx, tripID, expenseID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, tripID, expenseID, requestingUserID string) error {
	args := m.Called(ctx, tripID, expenseID, requestingUserID)
	return args.Error(0)
}
func (m *MockExpenseService) MarkSplitPaid(ctx context.Context, tripID, expenseID, targetUserID string, paid bool, requestingUserID string) (*domain.Expense, error) {
	args := m.Called(ctx, tripID, expenseID, targetUserID, paid, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) GetExpenseSummary(ctx context.Context, tripID, requestingUserID string) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, tripID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}
func (m *MockExpenseService) GetSettlements(ctx context.Context, tripID, requestingUserID string) ([]domain.Settlement, error) {
	args := m.Called(ctx, tripID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settlement), args.Error(1)
}
func (m *MockExpenseService) PreviewEqualSplit(ctx context.Context, tripID string, amount decimal.Decimal, participantIDs []string, requestingUserID string) ([]domain.ExpenseSplit, error) {
	args := m.Called(ctx, tripID, amount, participantIDs, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseSplit), args.Error(1)
}
func (m *MockExpenseService) WatchLedger(ctx context.Context, tripID, requestingUserID string) (<-chan domain.LedgerSnapshot, error) {
	args := m.Called(ctx, tripID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chan domain.LedgerSnapshot), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock ActivityService ---
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) GetActivity(ctx context.Context, tripID, activityID, requestingUserID string) (*domain.Activity, error) {
	args := m.Called(ctx, tripID, activityID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}
func (m *MockActivityService) ListActivities(ctx context.Context, tripID, requestingUserID string) ([]domain.Activity, error) {
	args := m.Called(ctx, tripID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}
func (m *MockActivityService) CreateActivity(ctx context.Context, tripID string, req dto.CreateActivityRequest, creatorUserID string) (*domain.Activity, error) {
	args := m.Called(ctx, tripID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}
func (m *MockActivityService) UpdateActivity(ctx context.Context, tripID, activityID string, req dto.UpdateActivityRequest, requestingUserID string) (*domain.Activity, error) {
	args := m.Called(ctx, tripID, activityID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}
func (m *MockActivityService) DeleteActivity(ctx context.Context, tripID, activityID, requestingUserID string) error {
	args := m.Called(ctx, tripID, activityID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

// --- Shared suite plumbing ---

const testJWTSecret = "test-secret-key-that-is-long-enough"

// handlerSuite wires the real routes and auth middleware to mocked services.
type handlerSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTripService     *MockTripService
	mockExpenseService  *MockExpenseService
	mockActivityService *MockActivityService
}

func (suite *handlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *handlerSuite) SetupTest() {
	suite.router = gin.New()
	suite.mockTripService = new(MockTripService)
	suite.mockExpenseService = new(MockExpenseService)
	suite.mockActivityService = new(MockActivityService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Trip:     suite.mockTripService,
		Expense:  suite.mockExpenseService,
		Activity: suite.mockActivityService,
	})
}

// generateTestToken creates a signed access token for userID.
func (suite *handlerSuite) generateTestToken(userID string) string {
	claims := middleware.TokenClaims{
		Email: "Ana@Example.com",
		Name:  "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "trip-ledger-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// serve performs an authenticated request as userID. An empty body sends none.
func (suite *handlerSuite) serve(method, url, userID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *handlerSuite) TearDownTest() {
	suite.mockTripService.AssertExpectations(suite.T())
	suite.mockExpenseService.AssertExpectations(suite.T())
	suite.mockActivityService.AssertExpectations(suite.T())
}

// closeNotifyingRecorder lets gin's Stream run against a recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyingRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

var _ http.CloseNotifier = (*closeNotifyingRecorder)(nil)
