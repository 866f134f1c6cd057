package booking_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridebook/booking"
	"ridebook/gateway"
	"ridebook/pkg/models"
)

type mockBookingAPI struct {
	submit           func(ctx context.Context, payload models.BookingPayload) (map[string]any, error)
	customerBookings func(ctx context.Context, userID int64) ([]models.Booking, int, error)
}

func (m *mockBookingAPI) Submit(ctx context.Context, payload models.BookingPayload) (map[string]any, error) {
	return m.submit(ctx, payload)
}

func (m *mockBookingAPI) CustomerBookings(ctx context.Context, userID int64) ([]models.Booking, int, error) {
	return m.customerBookings(ctx, userID)
}

var _ gateway.IBookingAPI = (*mockBookingAPI)(nil)

type staticSession struct {
	user models.User
}

func (s staticSession) CurrentUser() (*models.User, error) {
	u := s.user
	return &u, nil
}

// recorder collects every snapshot the coordinator emits.
type recorder struct {
	mu    sync.Mutex
	snaps []models.BookingSubmission
}

func (r *recorder) record(sub models.BookingSubmission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, sub)
}

func (r *recorder) all() []models.BookingSubmission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.BookingSubmission(nil), r.snaps...)
}

func (r *recorder) confirmedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.snaps {
		if s.Status == models.SubmissionConfirmed {
			n++
		}
	}
	return n
}

func rider() staticSession {
	return staticSession{user: models.User{
		ID:       7,
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+44123",
		Address:  "London",
	}}
}

func submittableDraft() models.RideDraft {
	s := booking.NewDraftStore()
	s.SetPickup("A")
	s.SetDrop("B")
	s.SetPassengerCount(models.PassengerAdult, 2)
	return s.Snapshot()
}

func sedan() *models.VehicleOption {
	return &models.VehicleOption{ID: "sedan", Title: "Sedan", PricePerKm: 2}
}

func waitTerminal(t *testing.T, c *booking.Coordinator) models.BookingSubmission {
	t.Helper()
	require.Eventually(t, func() bool {
		s := c.Snapshot().Status
		return s == models.SubmissionConfirmed || s == models.SubmissionFailed
	}, 2*time.Second, 5*time.Millisecond)
	return c.Snapshot()
}

func TestCoordinator_ServerSuccessWithID(t *testing.T) {
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			return map[string]any{"success": true, "bookingid": "BK-1001"}, nil
		},
	}
	c := booking.NewCoordinator(api, rider(), 50*time.Millisecond, testLogger())
	rec := &recorder{}
	c.Subscribe(rec.record)

	err := c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{})
	require.NoError(t, err)

	sub := waitTerminal(t, c)
	assert.Equal(t, models.SubmissionConfirmed, sub.Status)
	assert.Equal(t, "BK-1001", sub.BookingID)
	assert.Empty(t, sub.Err)

	// The fallback timer firing later must not re-confirm.
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, "BK-1001", c.Snapshot().BookingID)
	assert.Equal(t, 1, rec.confirmedCount())
}

func TestCoordinator_IDFieldVariants(t *testing.T) {
	for _, field := range []string{"bookingid", "bookingId", "booking_id", "id", "reference_id"} {
		t.Run(field, func(t *testing.T) {
			api := &mockBookingAPI{
				submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
					return map[string]any{field: "X-1"}, nil
				},
			}
			c := booking.NewCoordinator(api, rider(), time.Second, testLogger())
			require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))

			sub := waitTerminal(t, c)
			assert.Equal(t, models.SubmissionConfirmed, sub.Status)
			assert.Equal(t, "X-1", sub.BookingID)
		})
	}
}

func TestCoordinator_SuccessFlagWithoutID(t *testing.T) {
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			return map[string]any{"status": "success"}, nil
		},
	}
	c := booking.NewCoordinator(api, rider(), time.Second, testLogger())
	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))

	sub := waitTerminal(t, c)
	assert.Equal(t, models.SubmissionConfirmed, sub.Status)
	assert.Equal(t, "FB-7", sub.BookingID)
}

func TestCoordinator_AmbiguousResponseMaskedAsSuccess(t *testing.T) {
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			return map[string]any{}, nil
		},
	}
	c := booking.NewCoordinator(api, rider(), time.Second, testLogger())
	rec := &recorder{}
	c.Subscribe(rec.record)

	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))

	sub := waitTerminal(t, c)
	assert.Equal(t, models.SubmissionConfirmed, sub.Status)
	assert.Equal(t, "FB-7", sub.BookingID)
	assert.Empty(t, sub.Err)
	assert.NotEmpty(t, sub.Note)

	// The user-visible path never saw a failure.
	for _, s := range rec.all() {
		assert.NotEqual(t, models.SubmissionFailed, s.Status)
	}
}

func TestCoordinator_NetworkErrorFails(t *testing.T) {
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			return nil, errors.New("connection refused")
		},
	}
	c := booking.NewCoordinator(api, rider(), time.Second, testLogger())
	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))

	sub := waitTerminal(t, c)
	assert.Equal(t, models.SubmissionFailed, sub.Status)
	assert.Contains(t, sub.Err, "connection refused")
	assert.Empty(t, sub.BookingID)
}

func TestCoordinator_TimeoutPromotesToConfirmed(t *testing.T) {
	release := make(chan struct{})
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			<-release
			return map[string]any{"bookingid": "LATE-1"}, nil
		},
	}
	c := booking.NewCoordinator(api, rider(), 30*time.Millisecond, testLogger())
	rec := &recorder{}
	c.Subscribe(rec.record)

	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))

	sub := waitTerminal(t, c)
	assert.Equal(t, models.SubmissionConfirmed, sub.Status)
	assert.Equal(t, "USER-7", sub.BookingID)

	// Late network resolution loses the race and is discarded.
	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "USER-7", c.Snapshot().BookingID)
	assert.Equal(t, 1, rec.confirmedCount())
}

func TestCoordinator_AnonymousUserGetsTempID(t *testing.T) {
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			return map[string]any{}, nil
		},
	}
	c := booking.NewCoordinator(api, staticSession{}, time.Second, testLogger())
	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))

	sub := waitTerminal(t, c)
	assert.True(t, strings.HasPrefix(sub.BookingID, "TEMP-"), sub.BookingID)
}

func TestCoordinator_GuardsBlockWithoutNetworkCall(t *testing.T) {
	called := false
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			called = true
			return map[string]any{}, nil
		},
	}
	c := booking.NewCoordinator(api, rider(), time.Second, testLogger())

	// Missing vehicle.
	err := c.Submit(context.Background(), submittableDraft(), nil, booking.RouteStub{}, booking.Extras{})
	var verr *booking.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, booking.ReasonNoVehicle, verr.Reason)

	// Invalid draft.
	empty := booking.NewDraftStore().Snapshot()
	err = c.Submit(context.Background(), empty, sedan(), booking.RouteStub{}, booking.Extras{})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, booking.ReasonMissingPickup, verr.Reason)

	assert.False(t, called)
	assert.Equal(t, models.SubmissionIdle, c.Snapshot().Status)
}

func TestCoordinator_ResetDiscardsLateResolution(t *testing.T) {
	release := make(chan struct{})
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			<-release
			return map[string]any{"bookingid": "LATE-2"}, nil
		},
	}
	c := booking.NewCoordinator(api, rider(), time.Second, testLogger())
	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))
	assert.Equal(t, models.SubmissionPending, c.Snapshot().Status)

	c.Reset()
	assert.Equal(t, models.SubmissionIdle, c.Snapshot().Status)

	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, models.SubmissionIdle, c.Snapshot().Status)
	assert.Empty(t, c.Snapshot().BookingID)
}

func TestCoordinator_ResubmitAfterFailure(t *testing.T) {
	attempts := 0
	api := &mockBookingAPI{
		submit: func(context.Context, models.BookingPayload) (map[string]any, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("boom")
			}
			return map[string]any{"bookingid": "BK-2"}, nil
		},
	}
	c := booking.NewCoordinator(api, rider(), time.Second, testLogger())

	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))
	sub := waitTerminal(t, c)
	require.Equal(t, models.SubmissionFailed, sub.Status)

	require.NoError(t, c.Submit(context.Background(), submittableDraft(), sedan(), booking.RouteStub{}, booking.Extras{}))
	sub = waitTerminal(t, c)
	assert.Equal(t, models.SubmissionConfirmed, sub.Status)
	assert.Equal(t, "BK-2", sub.BookingID)
}
