package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apperrors "booking-scheduler-backend/internal/errors"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

//go:generate mockgen -source=oracle.go -destination=../mocks/calendar_mocks.go -package=mocks

// ConflictChecker answers whether a user's connected external calendars
// hold a conflicting event for an interval. The OAuth/token machinery
// behind it lives in a separate system; this client only sees a boolean.
// Implementations must distinguish a hard conflict from a degraded
// oracle (ErrOracleDegraded): the caller treats the latter as advisory.
type ConflictChecker interface {
	HasConflict(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
}

// conflictResponse is the oracle's wire format
type conflictResponse struct {
	Conflict bool `json:"conflict"`
}

// Client is an HTTP conflict oracle client. Construct with NewClient
// and inject; there is no package-level cached instance.
type Client struct {
	http *resty.Client
}

// NewClient creates a conflict oracle client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// HasConflict asks the oracle whether the user has a calendar conflict
// within [start, end). Timeouts and 5xx responses surface as
// ErrOracleDegraded, never as a hard conflict.
func (c *Client) HasConflict(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	var out conflictResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"user_id": userID.String(),
			"start":   start.UTC().Format(time.RFC3339),
			"end":     end.UTC().Format(time.RFC3339),
		}).
		SetResult(&out).
		Get("/v1/conflicts")
	if err != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrOracleDegraded, err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return false, fmt.Errorf("%w: status %d", apperrors.ErrOracleDegraded, resp.StatusCode())
	}
	if resp.IsError() {
		return false, fmt.Errorf("conflict oracle rejected request: status %d", resp.StatusCode())
	}
	return out.Conflict, nil
}

// NoopChecker reports no conflicts. Used when no oracle is configured.
type NoopChecker struct{}

// HasConflict always reports no conflict
func (NoopChecker) HasConflict(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	return false, nil
}
