//go:build integration
// +build integration

package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-scheduler-backend/internal/database/models"
	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/repository"
	"booking-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RemoteProviderTestSuite tests the RemoteProvider against a stub
// remote API and a real local mirror
type RemoteProviderTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	bookings      *repository.BookingRepository
	ctx           context.Context

	server  *httptest.Server
	handler http.HandlerFunc

	listing   *models.Listing
	eventType *models.EventType
}

// SetupSuite runs before all tests in the suite
func (suite *RemoteProviderTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.bookings = repository.NewBookingRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()

	// One stub server for the whole suite; each test swaps the handler
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.handler(w, r)
	}))
}

// TearDownSuite runs after all tests in the suite
func (suite *RemoteProviderTestSuite) TearDownSuite() {
	suite.server.Close()
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RemoteProviderTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.listing = suite.factories.Listing.Create()
	suite.Require().NoError(repository.NewListingRepository(db).Create(suite.ctx, suite.listing))
	suite.eventType = suite.factories.EventType.Create(suite.listing.ID)
	suite.Require().NoError(repository.NewEventTypeRepository(db).Create(suite.ctx, suite.eventType))
}

// TearDownTest runs after each test
func (suite *RemoteProviderTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RemoteProviderTestSuite) newProvider() *RemoteProvider {
	return NewRemoteProvider(suite.server.URL, "test-key", 2*time.Second, suite.bookings, logger.New())
}

// TestCreateBooking tests that a remote booking is mirrored locally
func (suite *RemoteProviderTestSuite) TestCreateBooking() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPost, r.Method)
		suite.Equal("/v1/bookings", r.URL.Path)
		suite.Equal("test-key", r.Header.Get("X-API-Key"))

		var in remoteBooking
		suite.Require().NoError(json.NewDecoder(r.Body).Decode(&in))
		in.Ref = "rb-001"
		in.Status = string(models.BookingStatusConfirmed)
		in.TotalPrice = 75
		in.Currency = "EUR"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(in)
	}

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booking := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, start, start.Add(time.Hour))
	booking.ConfirmationCode = ""

	created, err := suite.newProvider().CreateBooking(suite.ctx, booking)

	suite.NoError(err)
	suite.Equal(models.ProviderBackendRemote, created.SourceBackend)
	suite.Equal("rb-001", created.ExternalRef)
	suite.Equal(models.BookingStatusConfirmed, created.Status)
	suite.Equal(75.0, created.TotalPrice)
	suite.Equal("EUR", created.Currency)

	mirrored, err := suite.bookings.GetByExternalRef(suite.ctx, models.ProviderBackendRemote, "rb-001")
	suite.NoError(err)
	suite.Equal(created.ID, mirrored.ID)
}

// TestCreateBookingRemoteRejection tests that a rejected remote call
// leaves no local mirror
func (suite *RemoteProviderTestSuite) TestCreateBookingRemoteRejection() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	booking := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, start, start.Add(time.Hour))

	_, err := suite.newProvider().CreateBooking(suite.ctx, booking)

	suite.Error(err)
	suite.Contains(err.Error(), "status 422")
}

// TestSyncBookings tests the pull-and-upsert flow
func (suite *RemoteProviderTestSuite) TestSyncBookings() {
	// Pre-existing mirror that the sync should update
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	existing := suite.factories.Booking.Create(suite.listing.ID, suite.eventType.ID, start, start.Add(time.Hour))
	existing.SourceBackend = models.ProviderBackendRemote
	existing.ExternalRef = "rb-existing"
	suite.Require().NoError(suite.bookings.Create(suite.ctx, existing))

	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/v1/bookings", r.URL.Path)
		suite.Equal(suite.listing.ID.String(), r.URL.Query().Get("listing_id"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(remoteBookingList{Bookings: []remoteBooking{
			{
				Ref:         "rb-existing",
				ListingID:   suite.listing.ID,
				EventTypeID: suite.eventType.ID,
				StartTime:   start,
				EndTime:     start.Add(time.Hour),
				Status:      string(models.BookingStatusCompleted),
				TotalPrice:  60,
			},
			{
				Ref:           "rb-new",
				ListingID:     suite.listing.ID,
				EventTypeID:   suite.eventType.ID,
				CustomerName:  "Remote Customer",
				CustomerEmail: "remote@test.com",
				StartTime:     start.Add(24 * time.Hour),
				EndTime:       start.Add(25 * time.Hour),
				Timezone:      "UTC",
				Status:        string(models.BookingStatusConfirmed),
				TotalPrice:    50,
				Currency:      "USD",
			},
			{
				Ref:    "rb-bad",
				Status: "teleported",
			},
		}})
	}

	result, err := suite.newProvider().SyncBookings(suite.ctx, suite.listing.ID)

	suite.NoError(err)
	suite.Equal(2, result.Synced)
	suite.Equal(1, result.Failed)
	suite.Len(result.Errors, 1)
	suite.Contains(result.Errors[0], "rb-bad")

	updated, err := suite.bookings.GetByExternalRef(suite.ctx, models.ProviderBackendRemote, "rb-existing")
	suite.NoError(err)
	suite.Equal(models.BookingStatusCompleted, updated.Status)
	suite.Equal(60.0, updated.TotalPrice)

	created, err := suite.bookings.GetByExternalRef(suite.ctx, models.ProviderBackendRemote, "rb-new")
	suite.NoError(err)
	suite.Equal("Remote Customer", created.CustomerName)
	suite.Len(created.ConfirmationCode, 10)
}

// TestHealthCheck tests remote health probing
func (suite *RemoteProviderTestSuite) TestHealthCheck() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}

	status := suite.newProvider().HealthCheck(suite.ctx)

	suite.True(status.Healthy)
	suite.Equal(models.ProviderBackendRemote, status.Backend)
}

// TestHealthCheckUnhealthy tests an unreachable remote backend
func (suite *RemoteProviderTestSuite) TestHealthCheckUnhealthy() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	status := suite.newProvider().HealthCheck(suite.ctx)

	suite.False(status.Healthy)
	suite.Contains(status.Message, "503")
}

// TestRemoteProviderTestSuite runs the test suite
func TestRemoteProviderTestSuite(t *testing.T) {
	suite.Run(t, new(RemoteProviderTestSuite))
}
