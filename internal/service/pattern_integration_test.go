//go:build integration
// +build integration

package service_test

import (
	"context"
	"testing"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/recurrence"
	"booking-scheduler-backend/internal/repository"
	"booking-scheduler-backend/internal/service"
	"booking-scheduler-backend/internal/testutils"
	"booking-scheduler-backend/internal/timezone"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PatternServiceTestSuite tests pattern lifecycle against a real database
type PatternServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	svc           *service.PatternService
	ctx           context.Context

	listing *models.Listing
}

// SetupSuite runs before all tests in the suite
func (suite *PatternServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()

	db := suite.baseTestSuite.DB
	suite.svc = service.NewPatternService(
		repository.NewRecurringPatternRepository(db),
		repository.NewListingRepository(db),
		recurrence.NewEngine(timezone.NewConverter()),
		validator.New(),
	)
}

// TearDownSuite runs after all tests in the suite
func (suite *PatternServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PatternServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.listing = suite.factories.Listing.Create()
	err := repository.NewListingRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.listing)
	suite.Require().NoError(err)
}

// TearDownTest runs after each test
func (suite *PatternServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PatternServiceTestSuite) dailyRequest() *service.CreatePatternRequest {
	return &service.CreatePatternRequest{
		ListingID: suite.listing.ID,
		Frequency: models.PatternFrequencyDaily,
		Interval:  1,
		StartTime: "09:00",
		EndTime:   "10:00",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Timezone:  "UTC",
	}
}

// TestCreate tests creating a valid daily pattern
func (suite *PatternServiceTestSuite) TestCreate() {
	pattern, err := suite.svc.Create(suite.ctx, suite.dailyRequest())

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, pattern.ID)
	suite.True(pattern.Active)
	// MaxBookings defaults to 1 when omitted
	suite.Equal(1, pattern.MaxBookings)
}

// TestCreateUnknownListing tests listing verification
func (suite *PatternServiceTestSuite) TestCreateUnknownListing() {
	req := suite.dailyRequest()
	req.ListingID = uuid.New()

	_, err := suite.svc.Create(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrListingNotFound)
}

// TestCreateRejectsAmbiguousTermination tests that end date and
// occurrence count are mutually exclusive
func (suite *PatternServiceTestSuite) TestCreateRejectsAmbiguousTermination() {
	req := suite.dailyRequest()
	endDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	occurrences := 10
	req.EndDate = &endDate
	req.Occurrences = &occurrences

	_, err := suite.svc.Create(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrAmbiguousTermination)
}

// TestExpand tests materializing a stored pattern
func (suite *PatternServiceTestSuite) TestExpand() {
	pattern, err := suite.svc.Create(suite.ctx, suite.dailyRequest())
	suite.Require().NoError(err)

	windowStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	slots, err := suite.svc.Expand(suite.ctx, pattern.ID, windowStart, windowStart.AddDate(0, 0, 2))

	// Both window bounds are inclusive
	suite.NoError(err)
	suite.Len(slots, 3)
	for _, slot := range slots {
		suite.Equal(suite.listing.ID, slot.ListingID)
		suite.Equal(pattern.ID, *slot.PatternID)
	}
}

// TestUpdateRevalidates tests that a partial update cannot leave the
// pattern in an invalid configuration
func (suite *PatternServiceTestSuite) TestUpdateRevalidates() {
	pattern, err := suite.svc.Create(suite.ctx, suite.dailyRequest())
	suite.Require().NoError(err)

	badInterval := 0
	_, err = suite.svc.Update(suite.ctx, pattern.ID, &service.UpdatePatternRequest{Interval: &badInterval})

	suite.ErrorIs(err, apperrors.ErrInvalidInterval)
}

// TestUpdateAppliesFields tests partial field application
func (suite *PatternServiceTestSuite) TestUpdateAppliesFields() {
	pattern, err := suite.svc.Create(suite.ctx, suite.dailyRequest())
	suite.Require().NoError(err)

	interval := 2
	maxBookings := 5
	updated, err := suite.svc.Update(suite.ctx, pattern.ID, &service.UpdatePatternRequest{
		Interval:    &interval,
		MaxBookings: &maxBookings,
	})

	suite.NoError(err)
	suite.Equal(2, updated.Interval)
	suite.Equal(5, updated.MaxBookings)
	// Untouched fields survive
	suite.Equal("09:00", updated.StartTime)
}

// TestDeactivate tests soft termination
func (suite *PatternServiceTestSuite) TestDeactivate() {
	pattern, err := suite.svc.Create(suite.ctx, suite.dailyRequest())
	suite.Require().NoError(err)

	err = suite.svc.Deactivate(suite.ctx, pattern.ID)
	suite.NoError(err)

	found, err := suite.svc.GetByID(suite.ctx, pattern.ID)
	suite.NoError(err)
	suite.False(found.Active)

	// Deactivated patterns expand to nothing
	windowStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	slots, err := suite.svc.Expand(suite.ctx, pattern.ID, windowStart, windowStart.AddDate(0, 0, 3))
	suite.NoError(err)
	suite.Empty(slots)
}

// TestDeactivateUnknownPattern tests the not-found path
func (suite *PatternServiceTestSuite) TestDeactivateUnknownPattern() {
	err := suite.svc.Deactivate(suite.ctx, uuid.New())

	suite.ErrorIs(err, apperrors.ErrRecurringPatternNotFound)
}

// TestExpandListing tests expansion across a listing's active patterns
func (suite *PatternServiceTestSuite) TestExpandListing() {
	_, err := suite.svc.Create(suite.ctx, suite.dailyRequest())
	suite.Require().NoError(err)

	weekly := suite.dailyRequest()
	weekly.Frequency = models.PatternFrequencyWeekly
	weekly.DaysOfWeek = []int{1} // Mondays
	_, err = suite.svc.Create(suite.ctx, weekly)
	suite.Require().NoError(err)

	windowStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	slots, err := suite.svc.ExpandListing(suite.ctx, suite.listing.ID, windowStart, windowStart.AddDate(0, 0, 6))

	suite.NoError(err)
	// 7 daily occurrences plus one Monday (June 2nd)
	suite.Len(slots, 8)
}

// TestPatternServiceTestSuite runs the test suite
func TestPatternServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PatternServiceTestSuite))
}
