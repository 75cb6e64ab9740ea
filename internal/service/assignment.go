package service

import (
	"context"
	"time"

	"booking-scheduler-backend/internal/database/models"
	apperrors "booking-scheduler-backend/internal/errors"
	"booking-scheduler-backend/internal/logger"

	"github.com/google/uuid"
)

// AssignmentService implements weighted round-robin assignment of
// bookings to team members. Scoring is a read-only heuristic; the
// authoritative double-booking guard lives at the persistence boundary.
type AssignmentService struct {
	members      TeamMemberSource
	history      AssignmentHistorySource
	availability AvailabilityChecker
	lookback     int
	newBonus     float64
	now          func() time.Time
	log          *logger.Logger
}

// NewAssignmentService creates a new assignment service. lookback
// bounds the history window (most-recent N assignments); newBonus is
// the fixed recency bonus granted to never-assigned members.
func NewAssignmentService(
	members TeamMemberSource,
	history AssignmentHistorySource,
	availability AvailabilityChecker,
	lookback int,
	newBonus float64,
) *AssignmentService {
	return &AssignmentService{
		members:      members,
		history:      history,
		availability: availability,
		lookback:     lookback,
		newBonus:     newBonus,
		now:          time.Now,
		log:          logger.New(),
	}
}

// candidateScore pairs a member with its fairness score for selection
type candidateScore struct {
	member *models.TeamMember
	score  float64
}

// Assign selects the fairest eligible, available team member for a new
// booking, or nil when no candidate qualifies. The empty outcome is a
// business result, not an error; errors are reserved for
// infrastructure failures.
//
// Steps run in fixed order: eligibility filter, availability filter,
// history load, scoring. Availability runs before scoring so an
// unavailable member is never scored, and the history reflects state
// before this booking is committed.
func (s *AssignmentService) Assign(ctx context.Context, eventTypeID, listingID uuid.UUID, start, end time.Time, tz string) (*models.TeamMember, error) {
	return s.AssignExcluding(ctx, eventTypeID, listingID, start, end, tz, nil)
}

// AssignExcluding is Assign with one candidate removed from the pool,
// used when that candidate just lost a concurrent write race.
func (s *AssignmentService) AssignExcluding(ctx context.Context, eventTypeID, listingID uuid.UUID, start, end time.Time, tz string, exclude *uuid.UUID) (*models.TeamMember, error) {
	if !end.After(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	members, err := s.members.GetAssignable(ctx, listingID)
	if err != nil {
		return nil, &apperrors.DataAccessError{Op: "loading assignable members", Err: err}
	}

	// 1. Eligibility: event type allow-list (empty list = all)
	eligible := make([]*models.TeamMember, 0, len(members))
	for i := range members {
		m := &members[i]
		if exclude != nil && m.ID == *exclude {
			continue
		}
		if !m.EligibleFor(eventTypeID) {
			continue
		}
		if m.RoundRobinWeight <= 0 {
			return nil, apperrors.ErrInvalidRoundRobinWeight
		}
		eligible = append(eligible, m)
	}
	if len(eligible) == 0 {
		return nil, nil
	}

	// 2. Availability, preserving filter order for deterministic ties
	available := make([]*models.TeamMember, 0, len(eligible))
	for _, m := range eligible {
		ok, err := s.availability.IsAvailable(ctx, m, start, end, tz)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, m)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}

	// 3. Bounded-lookback history: fairness is local-window, not
	// lifetime, so long-tenured members are not penalized forever
	records, err := s.history.GetAssignmentHistory(ctx, listingID, eventTypeID, s.lookback)
	if err != nil {
		return nil, &apperrors.DataAccessError{Op: "loading assignment history", Err: err}
	}

	// 4. Score and select lowest; ties keep the earlier candidate
	best := s.score(available, records)

	s.log.WithFields(map[string]interface{}{
		"listing_id":     listingID,
		"event_type_id":  eventTypeID,
		"team_member_id": best.member.ID,
		"score":          best.score,
		"candidates":     len(available),
	}).Debug("round robin assignment selected")

	return best.member, nil
}

// score computes count/weight - recencyBonus per candidate and returns
// the lowest. Dividing by weight normalizes for capacity; the recency
// term rewards idle time so the same least-loaded member is not picked
// back-to-back.
func (s *AssignmentService) score(candidates []*models.TeamMember, records []models.AssignmentHistoryRecord) candidateScore {
	counts := make(map[uuid.UUID]int)
	lastAssigned := make(map[uuid.UUID]time.Time)
	for _, rec := range records {
		counts[rec.UserID]++
		if rec.AssignedAt.After(lastAssigned[rec.UserID]) {
			lastAssigned[rec.UserID] = rec.AssignedAt
		}
	}

	now := s.now()
	best := candidateScore{member: candidates[0], score: s.scoreFor(candidates[0], counts, lastAssigned, now)}
	for _, m := range candidates[1:] {
		sc := s.scoreFor(m, counts, lastAssigned, now)
		if sc < best.score {
			best = candidateScore{member: m, score: sc}
		}
	}
	return best
}

func (s *AssignmentService) scoreFor(m *models.TeamMember, counts map[uuid.UUID]int, lastAssigned map[uuid.UUID]time.Time, now time.Time) float64 {
	count := float64(counts[m.UserID])

	var recencyBonus float64
	if last, ok := lastAssigned[m.UserID]; ok {
		idleDays := now.Sub(last).Hours() / 24
		recencyBonus = idleDays / 24
	} else {
		// Never assigned within the lookback window: prefer over any
		// recently-assigned member at equal load
		recencyBonus = s.newBonus
	}

	return count/m.RoundRobinWeight - recencyBonus
}
