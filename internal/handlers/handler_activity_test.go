package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/apperrors"
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ActivityHandlerTestSuite struct {
	handlerSuite
}

func sampleActivity() *domain.Activity {
	cost := decimal.RequireFromString("12.5")
	return &domain.Activity{
		ActivityID:   "act-1",
		TripID:       "trip-1",
		Title:        "Jerónimos Monastery",
		ActivityDate: time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		Cost:         &cost,
		Category:     domain.ActivitySightseeing,
		Order:        1,
	}
}

func (suite *ActivityHandlerTestSuite) TestCreateActivity_Success() {
	body := `{"title":"Jerónimos Monastery","activityDate":"2026-07-03T00:00:00Z","startTime":"10:00","cost":"12.5","category":"activity"}`
	suite.mockActivityService.On("CreateActivity", mock.Anything, "trip-1",
		mock.MatchedBy(func(req dto.CreateActivityRequest) bool {
			return req.StartTime == "10:00" && req.Cost != nil && req.Order == nil
		}),
		"user-a",
	).Return(sampleActivity(), nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/trips/trip-1/activities", "user-a", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ActivityResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("12.50", resp.Cost)
	suite.Equal(1, resp.Order)
}

func (suite *ActivityHandlerTestSuite) TestCreateActivity_UnknownCategory() {
	body := `{"title":"Rave","activityDate":"2026-07-03T00:00:00Z","category":"party"}`

	w := suite.serve(http.MethodPost, "/api/v1/trips/trip-1/activities", "user-a", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockActivityService.AssertNotCalled(suite.T(), "CreateActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ActivityHandlerTestSuite) TestListActivities() {
	suite.mockActivityService.On("ListActivities", mock.Anything, "trip-1", "user-a").Return([]domain.Activity{*sampleActivity()}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/trips/trip-1/activities", "user-a", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListActivitiesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Activities, 1)
	suite.Equal("act-1", resp.Activities[0].ActivityID)
}

func (suite *ActivityHandlerTestSuite) TestGetActivity_NotFound() {
	suite.mockActivityService.On("GetActivity", mock.Anything, "trip-1", "nope", "user-a").
		Return(nil, apperrors.NewNotFoundError("activity nope not found")).Once()

	w := suite.serve(http.MethodGet, "/api/v1/trips/trip-1/activities/nope", "user-a", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ActivityHandlerTestSuite) TestUpdateActivity_Forbidden() {
	suite.mockActivityService.On("UpdateActivity", mock.Anything, "trip-1", "act-1",
		mock.MatchedBy(func(req dto.UpdateActivityRequest) bool {
			return req.Title != nil && *req.Title == "Renamed"
		}),
		"user-c",
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.serve(http.MethodPut, "/api/v1/trips/trip-1/activities/act-1", "user-c", `{"title":"Renamed"}`)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ActivityHandlerTestSuite) TestDeleteActivity() {
	suite.mockActivityService.On("DeleteActivity", mock.Anything, "trip-1", "act-1", "user-a").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/trips/trip-1/activities/act-1", "user-a", "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *ActivityHandlerTestSuite) TestActivities_RequireAuth() {
	w := suite.serve(http.MethodGet, "/api/v1/trips/trip-1/activities", "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestActivityHandler(t *testing.T) {
	suite.Run(t, new(ActivityHandlerTestSuite))
}
