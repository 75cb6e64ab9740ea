package service

import (
	"context"
	"time"

	"booking-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamMemberSource provides the team member reads the assignor needs
type TeamMemberSource interface {
	GetAssignable(ctx context.Context, listingID uuid.UUID) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error)
}

// BookingConflictSource provides the booking overlap reads the
// availability resolver needs
type BookingConflictSource interface {
	GetConflicting(ctx context.Context, teamMemberID uuid.UUID, start, end time.Time) ([]models.Booking, error)
}

// AssignmentHistorySource provides the derived assignment history used
// for fairness scoring
type AssignmentHistorySource interface {
	GetAssignmentHistory(ctx context.Context, listingID, eventTypeID uuid.UUID, limit int) ([]models.AssignmentHistoryRecord, error)
}

// CalendarIntegrationSource provides the calendar integrations that
// participate in external conflict checks
type CalendarIntegrationSource interface {
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) ([]models.CalendarIntegration, error)
}

// AvailabilityChecker decides whether a team member is free for an interval
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, member *models.TeamMember, start, end time.Time, tz string) (bool, error)
}
