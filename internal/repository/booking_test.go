//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BookingRepositoryTestSuite tests the BookingRepository
type BookingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BookingRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	listing   *models.Listing
	eventType *models.EventType
	member    *models.TeamMember
}

// SetupSuite runs before all tests in the suite
func (suite *BookingRepositoryTestSuite) SetupSuite() {
	// Initialize shared BaseTestSuite using the new API
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	// Init repository and factories
	suite.repo = NewBookingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *BookingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BookingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	// Every booking needs a listing, event type and team member
	suite.listing = suite.factories.Listing.Create()
	err := NewListingRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.listing)
	suite.Require().NoError(err)

	suite.eventType = suite.factories.EventType.Create(suite.listing.ID)
	err = NewEventTypeRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.eventType)
	suite.Require().NoError(err)

	suite.member = suite.factories.TeamMember.Create(suite.listing.ID)
	err = NewTeamMemberRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.member)
	suite.Require().NoError(err)
}

// TearDownTest runs after each test
func (suite *BookingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BookingRepositoryTestSuite) assignedBooking(start, end time.Time) *models.Booking {
	return suite.factories.Booking.Assigned(suite.listing.ID, suite.eventType.ID, suite.member.ID, start, end)
}

// TestCreate tests creating an unassigned booking
func (suite *BookingRepositoryTestSuite) TestCreate() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booking := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, start, start.Add(time.Hour))

	err := suite.repo.Create(suite.ctx, booking)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, booking.ID)
	suite.NotZero(booking.CreatedAt)
}

// TestCreateAssigned tests creating a booking assigned to a free member
func (suite *BookingRepositoryTestSuite) TestCreateAssigned() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booking := suite.assignedBooking(start, start.Add(time.Hour))

	err := suite.repo.CreateAssigned(suite.ctx, booking)

	suite.NoError(err)

	found, err := suite.repo.GetByID(suite.ctx, booking.ID)
	suite.NoError(err)
	suite.Equal(suite.member.ID, *found.TeamMemberID)
}

// TestCreateAssignedConflict tests that an overlapping booking for the
// same member is rejected
func (suite *BookingRepositoryTestSuite) TestCreateAssignedConflict() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	first := suite.assignedBooking(start, start.Add(time.Hour))
	err := suite.repo.CreateAssigned(suite.ctx, first)
	suite.Require().NoError(err)

	// Overlaps the second half of the first booking
	second := suite.assignedBooking(start.Add(30*time.Minute), start.Add(90*time.Minute))
	err = suite.repo.CreateAssigned(suite.ctx, second)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrBookingConflict)
}

// TestCreateAssignedIndexPresent tests that schema setup created the
// partial unique index backing double-booking enforcement
func (suite *BookingRepositoryTestSuite) TestCreateAssignedIndexPresent() {
	var count int64
	err := suite.baseTestSuite.DB.Raw(
		`SELECT COUNT(*) FROM pg_indexes WHERE tablename = 'bookings' AND indexname = 'idx_bookings_member_interval_active'`,
	).Scan(&count).Error

	suite.Require().NoError(err)
	suite.EqualValues(1, count)
}

// TestCreateAssignedConcurrentOverlap tests that two racing creates for
// the same member and overlapping intervals resolve to exactly one
// winner. The member row lock serializes the transactions; the loser
// re-reads after the winner commits and sees the conflict.
func (suite *BookingRepositoryTestSuite) TestCreateAssignedConcurrentOverlap() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			booking := suite.assignedBooking(start, start.Add(time.Hour))
			results <- suite.repo.CreateAssigned(context.Background(), booking)
		}()
	}

	var created, conflicted int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrBookingConflict):
			conflicted++
		default:
			suite.Require().NoError(err)
		}
	}

	suite.Equal(1, created)
	suite.Equal(1, conflicted)
}

// TestCreateAssignedAdjacentIntervals tests that back-to-back bookings
// do not conflict
func (suite *BookingRepositoryTestSuite) TestCreateAssignedAdjacentIntervals() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	first := suite.assignedBooking(start, start.Add(time.Hour))
	err := suite.repo.CreateAssigned(suite.ctx, first)
	suite.Require().NoError(err)

	// Starts exactly when the first ends
	second := suite.assignedBooking(start.Add(time.Hour), start.Add(2*time.Hour))
	err = suite.repo.CreateAssigned(suite.ctx, second)

	suite.NoError(err)
}

// TestCreateAssignedCancelledDoesNotBlock tests that cancelled bookings
// release their interval
func (suite *BookingRepositoryTestSuite) TestCreateAssignedCancelledDoesNotBlock() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	first := suite.assignedBooking(start, start.Add(time.Hour))
	first.Status = models.BookingStatusCancelled
	err := suite.repo.CreateAssigned(suite.ctx, first)
	suite.Require().NoError(err)

	second := suite.assignedBooking(start, start.Add(time.Hour))
	err = suite.repo.CreateAssigned(suite.ctx, second)

	suite.NoError(err)
}

// TestCreateAssignedOtherMemberDoesNotConflict tests that members do not
// block each other
func (suite *BookingRepositoryTestSuite) TestCreateAssignedOtherMemberDoesNotConflict() {
	other := suite.factories.TeamMember.Create(suite.listing.ID)
	err := NewTeamMemberRepository(suite.baseTestSuite.DB).Create(suite.ctx, other)
	suite.Require().NoError(err)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	first := suite.assignedBooking(start, start.Add(time.Hour))
	err = suite.repo.CreateAssigned(suite.ctx, first)
	suite.Require().NoError(err)

	second := suite.factories.Booking.Assigned(suite.listing.ID, suite.eventType.ID, other.ID, start, start.Add(time.Hour))
	err = suite.repo.CreateAssigned(suite.ctx, second)

	suite.NoError(err)
}

// TestGetConflicting tests the strict-overlap interval query
func (suite *BookingRepositoryTestSuite) TestGetConflicting() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booked := suite.assignedBooking(start, start.Add(time.Hour))
	err := suite.repo.CreateAssigned(suite.ctx, booked)
	suite.Require().NoError(err)

	// Overlapping window finds it
	conflicts, err := suite.repo.GetConflicting(suite.ctx, suite.member.ID, start.Add(30*time.Minute), start.Add(2*time.Hour))
	suite.NoError(err)
	suite.Len(conflicts, 1)
	suite.Equal(booked.ID, conflicts[0].ID)

	// Adjacent window does not
	conflicts, err = suite.repo.GetConflicting(suite.ctx, suite.member.ID, start.Add(time.Hour), start.Add(2*time.Hour))
	suite.NoError(err)
	suite.Empty(conflicts)
}

// TestGetByConfirmationCode tests lookup by confirmation code
func (suite *BookingRepositoryTestSuite) TestGetByConfirmationCode() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booking := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, start, start.Add(time.Hour))
	err := suite.repo.Create(suite.ctx, booking)
	suite.Require().NoError(err)

	found, err := suite.repo.GetByConfirmationCode(suite.ctx, booking.ConfirmationCode)
	suite.NoError(err)
	suite.Equal(booking.ID, found.ID)

	_, err = suite.repo.GetByConfirmationCode(suite.ctx, "NOPE1234")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByExternalRef tests lookup of synced bookings by backend ref
func (suite *BookingRepositoryTestSuite) TestGetByExternalRef() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booking := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, start, start.Add(time.Hour))
	booking.SourceBackend = models.ProviderBackendRemote
	booking.ExternalRef = "ext-123"
	err := suite.repo.Create(suite.ctx, booking)
	suite.Require().NoError(err)

	found, err := suite.repo.GetByExternalRef(suite.ctx, models.ProviderBackendRemote, "ext-123")
	suite.NoError(err)
	suite.Equal(booking.ID, found.ID)

	// Same ref under a different backend is a different booking
	_, err = suite.repo.GetByExternalRef(suite.ctx, models.ProviderBackendLocal, "ext-123")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByListingAndWindow tests the listing window query
func (suite *BookingRepositoryTestSuite) TestGetByListingAndWindow() {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	inside := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, day.Add(9*time.Hour), day.Add(10*time.Hour))
	outside := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, day.Add(48*time.Hour), day.Add(49*time.Hour))
	suite.Require().NoError(suite.repo.Create(suite.ctx, inside))
	suite.Require().NoError(suite.repo.Create(suite.ctx, outside))

	bookings, err := suite.repo.GetByListingAndWindow(suite.ctx, suite.listing.ID, day, day.Add(24*time.Hour))

	suite.NoError(err)
	suite.Len(bookings, 1)
	suite.Equal(inside.ID, bookings[0].ID)
}

// TestGetAssignmentHistory tests the derived history projection
func (suite *BookingRepositoryTestSuite) TestGetAssignmentHistory() {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		b := suite.assignedBooking(base.Add(time.Duration(i)*2*time.Hour), base.Add(time.Duration(i)*2*time.Hour+time.Hour))
		b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		suite.Require().NoError(suite.repo.CreateAssigned(suite.ctx, b))
	}

	// Unassigned bookings never appear in history
	loose := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, base.Add(10*time.Hour), base.Add(11*time.Hour))
	suite.Require().NoError(suite.repo.Create(suite.ctx, loose))

	records, err := suite.repo.GetAssignmentHistory(suite.ctx, suite.listing.ID, suite.eventType.ID, 2)

	suite.NoError(err)
	suite.Len(records, 2)
	for _, rec := range records {
		suite.Equal(suite.member.ID, rec.TeamMemberID)
		suite.Equal(suite.member.UserID, rec.UserID)
	}
	// Newest first
	suite.True(records[0].AssignedAt.After(records[1].AssignedAt))
}

// TestUpdate tests updating a booking's status
func (suite *BookingRepositoryTestSuite) TestUpdate() {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booking := suite.assignedBooking(start, start.Add(time.Hour))
	suite.Require().NoError(suite.repo.CreateAssigned(suite.ctx, booking))

	booking.Status = models.BookingStatusConfirmed
	err := suite.repo.Update(suite.ctx, booking)
	suite.NoError(err)

	found, err := suite.repo.GetByID(suite.ctx, booking.ID)
	suite.NoError(err)
	suite.Equal(models.BookingStatusConfirmed, found.Status)
}

// TestBookingRepositoryTestSuite runs the test suite
func TestBookingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryTestSuite))
}
