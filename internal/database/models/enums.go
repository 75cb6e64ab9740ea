package models

// BookingStatus defines the lifecycle states of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// IsValid checks if the BookingStatus is valid
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transition is allowed
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to the target state.
// Allowed transitions: pending -> confirmed -> completed,
// pending|confirmed -> cancelled, confirmed -> no_show.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled || target == BookingStatusNoShow
	}
	return false
}

// PaymentStatus defines the payment states of a booking
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// IsValid checks if the PaymentStatus is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}

// TeamMemberRole defines the role of a team member within a listing
type TeamMemberRole string

const (
	TeamMemberRoleOwner  TeamMemberRole = "owner"
	TeamMemberRoleMember TeamMemberRole = "member"
	TeamMemberRoleViewer TeamMemberRole = "viewer"
)

// IsValid checks if the TeamMemberRole is valid
func (r TeamMemberRole) IsValid() bool {
	switch r {
	case TeamMemberRoleOwner, TeamMemberRoleMember, TeamMemberRoleViewer:
		return true
	}
	return false
}

// PatternFrequency defines the recurrence frequency of an availability pattern
type PatternFrequency string

const (
	PatternFrequencyDaily   PatternFrequency = "daily"
	PatternFrequencyWeekly  PatternFrequency = "weekly"
	PatternFrequencyMonthly PatternFrequency = "monthly"
	PatternFrequencyYearly  PatternFrequency = "yearly"
)

// IsValid checks if the PatternFrequency is valid
func (f PatternFrequency) IsValid() bool {
	switch f {
	case PatternFrequencyDaily, PatternFrequencyWeekly, PatternFrequencyMonthly, PatternFrequencyYearly:
		return true
	}
	return false
}

// ProviderBackend identifies the booking backend a booking originates from
type ProviderBackend string

const (
	ProviderBackendLocal  ProviderBackend = "local"
	ProviderBackendRemote ProviderBackend = "remote"
)

// IsValid checks if the ProviderBackend is valid
func (b ProviderBackend) IsValid() bool {
	switch b {
	case ProviderBackendLocal, ProviderBackendRemote:
		return true
	}
	return false
}
