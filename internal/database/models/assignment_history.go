package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentHistoryRecord is a read-only projection over past assigned
// bookings, used to compute round-robin fairness scores. Records are
// derived by query from the bookings table and never written directly.
type AssignmentHistoryRecord struct {
	BookingID    uuid.UUID `json:"booking_id"`
	TeamMemberID uuid.UUID `json:"team_member_id"`
	UserID       uuid.UUID `json:"user_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}
