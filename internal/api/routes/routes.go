package routes

import (
	"time"

	"booking-scheduler-backend/internal/api/handlers"
	"booking-scheduler-backend/internal/api/middleware"
	"booking-scheduler-backend/internal/calendar"
	"booking-scheduler-backend/internal/config"
	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/provider"
	"booking-scheduler-backend/internal/recurrence"
	"booking-scheduler-backend/internal/repository"
	"booking-scheduler-backend/internal/service"
	"booking-scheduler-backend/internal/timezone"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application and
// returns the router with the provider registry, which the sync
// worker shares
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *provider.Registry) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	log := logger.New()

	// Repositories
	listingRepo := repository.NewListingRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	patternRepo := repository.NewRecurringPatternRepository(db)
	slotRepo := repository.NewAvailabilitySlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	integrationRepo := repository.NewCalendarIntegrationRepository(db)

	// Scheduling core
	tz := timezone.NewConverter()
	engine := recurrence.NewEngine(tz)

	var oracle calendar.ConflictChecker = calendar.NoopChecker{}
	if cfg.CalendarOracleURL != "" {
		oracle = calendar.NewClient(cfg.CalendarOracleURL, time.Duration(cfg.CalendarOracleTimeout)*time.Millisecond)
	}

	availabilityService := service.NewAvailabilityService(
		bookingRepo, integrationRepo, oracle, tz,
		time.Duration(cfg.AvailabilityTimeout)*time.Millisecond,
	)
	assignmentService := service.NewAssignmentService(
		memberRepo, bookingRepo, availabilityService,
		cfg.HistoryLookback, cfg.NewMemberBonus,
	)
	patternService := service.NewPatternService(patternRepo, listingRepo, engine, validate)

	// Booking backends
	registry := provider.NewRegistry()
	registry.Register(provider.NewLocalProvider(bookingRepo, eventTypeRepo, slotRepo, db, log))
	if cfg.RemoteProviderURL != "" {
		registry.Register(provider.NewRemoteProvider(
			cfg.RemoteProviderURL, cfg.RemoteProviderAPIKey,
			time.Duration(cfg.RemoteProviderTimeout)*time.Millisecond,
			bookingRepo, log,
		))
	}

	bookingService := service.NewBookingService(bookingRepo, eventTypeRepo, assignmentService, registry, validate, log)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, registry)
	patternHandler := handlers.NewPatternHandler(patternService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, memberRepo, patternService, registry)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	bookingHandler := handlers.NewBookingHandler(bookingService, registry)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")
	{
		patterns := v1.Group("/patterns")
		{
			patterns.POST("", patternHandler.CreatePattern)
			patterns.GET("/:id", patternHandler.GetPattern)
			patterns.PATCH("/:id", patternHandler.UpdatePattern)
			patterns.DELETE("/:id", patternHandler.DeactivatePattern)
			patterns.GET("/:id/occurrences", patternHandler.ExpandPattern)
		}

		listings := v1.Group("/listings")
		{
			listings.GET("/:id/slots", availabilityHandler.GetListingSlots)
			listings.GET("/:id/slots/preview", availabilityHandler.PreviewListingSlots)
			listings.GET("/:id/bookings", bookingHandler.ListBookings)
			listings.POST("/:id/sync", bookingHandler.SyncBookings)
		}

		v1.GET("/team-members/:id/availability", availabilityHandler.CheckMemberAvailability)
		v1.POST("/assignments/preview", assignmentHandler.Assign)

		bookings := v1.Group("/bookings")
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.GET("/code/:code", bookingHandler.GetBookingByCode)
			bookings.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
			bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
		}
	}

	return router, registry
}
