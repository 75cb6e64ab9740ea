package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booking-scheduler-backend/internal/api/handlers"
	"booking-scheduler-backend/internal/database/models"
	"booking-scheduler-backend/internal/mocks"
	"booking-scheduler-backend/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BookingHandlerTestSuite defines the test suite for BookingHandler
type BookingHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProvider *mocks.MockBookingProvider
	registry     *provider.Registry
	handler      *handlers.BookingHandler
	router       *gin.Engine
}

func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProvider = mocks.NewMockBookingProvider(suite.ctrl)
	suite.registry = provider.NewRegistry()

	// The booking service is only reached after request parsing
	// succeeds; these tests cover the parsing and registry paths.
	suite.handler = handlers.NewBookingHandler(nil, suite.registry)

	suite.router = gin.New()
	suite.router.POST("/bookings", suite.handler.CreateBooking)
	suite.router.GET("/bookings/:id", suite.handler.GetBooking)
	suite.router.GET("/bookings/code/:code", suite.handler.GetBookingByCode)
	suite.router.PATCH("/bookings/:id/status", suite.handler.UpdateBookingStatus)
	suite.router.POST("/bookings/:id/cancel", suite.handler.CancelBooking)
	suite.router.GET("/listings/:id/bookings", suite.handler.ListBookings)
	suite.router.POST("/listings/:id/sync", suite.handler.SyncBookings)
}

func (suite *BookingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BookingHandlerTestSuite) serve(method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_MalformedJSON() {
	w := suite.serve(http.MethodPost, "/bookings", "{not json")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_MissingRequiredFields() {
	w := suite.serve(http.MethodPost, "/bookings", `{"customer_name": "Jane"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BookingHandlerTestSuite) TestGetBooking_InvalidID() {
	w := suite.serve(http.MethodGet, "/bookings/not-a-uuid", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid booking ID")
}

func (suite *BookingHandlerTestSuite) TestUpdateBookingStatus_InvalidID() {
	w := suite.serve(http.MethodPatch, "/bookings/abc/status", `{"status": "confirmed"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BookingHandlerTestSuite) TestUpdateBookingStatus_MissingStatus() {
	w := suite.serve(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status", `{}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BookingHandlerTestSuite) TestCancelBooking_InvalidID() {
	w := suite.serve(http.MethodPost, "/bookings/abc/cancel", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BookingHandlerTestSuite) TestListBookings_InvalidWindow() {
	w := suite.serve(http.MethodGet, "/listings/"+uuid.NewString()+"/bookings?start=yesterday&end=tomorrow", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BookingHandlerTestSuite) TestSyncBookings_Success() {
	listingID := uuid.New()
	suite.mockProvider.EXPECT().Backend().Return(models.ProviderBackendRemote).AnyTimes()
	suite.mockProvider.EXPECT().SyncBookings(gomock.Any(), listingID).Return(&provider.SyncResult{
		Backend: models.ProviderBackendRemote,
		Synced:  3,
	}, nil)
	suite.registry.Register(suite.mockProvider)

	w := suite.serve(http.MethodPost, "/listings/"+listingID.String()+"/sync", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var result provider.SyncResult
	err := json.Unmarshal(w.Body.Bytes(), &result)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProviderBackendRemote, result.Backend)
	assert.Equal(suite.T(), 3, result.Synced)
}

func (suite *BookingHandlerTestSuite) TestSyncBookings_UnregisteredBackend() {
	w := suite.serve(http.MethodPost, "/listings/"+uuid.NewString()+"/sync?backend=remote", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BookingHandlerTestSuite) TestSyncBookings_InvalidListingID() {
	w := suite.serve(http.MethodPost, "/listings/nope/sync", "")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestBookingHandlerTestSuite runs the test suite
func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
