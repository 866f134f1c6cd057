package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ridebook/gateway"
	"ridebook/pkg/logger"
	"ridebook/pkg/models"
)

// Coordinator owns the submission state machine:
//
//	Idle -> Pending -> Confirmed | Failed
//
// Confirmed and Failed are terminal for one attempt; a new Submit starts a
// fresh attempt and discards the old one. The network resolution and the
// fallback timer race for the terminal transition; whichever arrives second
// is a no-op.
type Coordinator struct {
	mu sync.Mutex

	api      gateway.IBookingAPI
	session  SessionProvider
	log      logger.ILogger
	fallback time.Duration

	sub      models.BookingSubmission
	attempt  string
	timer    *time.Timer
	listener func(models.BookingSubmission)
}

func NewCoordinator(api gateway.IBookingAPI, session SessionProvider, fallback time.Duration, log logger.ILogger) *Coordinator {
	return &Coordinator{
		api:      api,
		session:  session,
		log:      log,
		fallback: fallback,
		sub:      models.BookingSubmission{Status: models.SubmissionIdle},
	}
}

// Subscribe registers the single consumer notified on every transition.
// The callback receives a snapshot and fires at most once per terminal
// transition.
func (c *Coordinator) Subscribe(fn func(models.BookingSubmission)) {
	c.mu.Lock()
	c.listener = fn
	c.mu.Unlock()
}

func (c *Coordinator) Snapshot() models.BookingSubmission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sub
}

// Submit validates the draft and fires the booking. Validation failures and
// a missing vehicle are reported without any network call; the state stays
// Idle. A nil error means the submission entered Pending.
func (c *Coordinator) Submit(ctx context.Context, draft models.RideDraft, vehicle *models.VehicleOption, estimator Estimator, extras Extras) error {
	if vehicle == nil {
		return &ValidationError{Reason: ReasonNoVehicle}
	}
	if err := ValidateDraft(draft); err != nil {
		return err
	}

	user, err := c.session.CurrentUser()
	if err != nil {
		return fmt.Errorf("current user: %w", err)
	}

	estimate := estimator.Estimate(draft, *vehicle)
	payload := BuildPayload(draft, *vehicle, estimate, *user, extras)

	c.mu.Lock()
	attempt := uuid.NewString()
	c.attempt = attempt
	c.sub = models.BookingSubmission{Status: models.SubmissionPending}
	uid := user.ID
	c.timer = time.AfterFunc(c.fallback, func() {
		c.promoteOnTimeout(attempt, uid)
	})
	c.mu.Unlock()
	c.emit()

	c.log.Info("booking submitted",
		logger.String("vehicle", vehicle.ID),
		logger.Float64("distance_km", estimate.DistanceKm),
		logger.Duration("fallback", c.fallback))

	go c.dispatch(ctx, attempt, payload, uid)
	return nil
}

// Reset returns the machine to Idle, e.g. when the consuming screen goes
// away while Pending. The in-flight request and its timer are not
// cancelled; their late resolutions miss the attempt check and are ignored.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	c.attempt = ""
	c.listener = nil
	c.sub = models.BookingSubmission{Status: models.SubmissionIdle}
	c.mu.Unlock()
}

func (c *Coordinator) dispatch(ctx context.Context, attempt string, payload models.BookingPayload, uid int64) {
	resp, err := c.api.Submit(ctx, payload)
	if err != nil {
		c.fail(attempt, err)
		return
	}
	c.resolveResponse(attempt, resp, uid)
}

// resolveResponse interprets a non-error server reply. The upstream success
// shape is inconsistent, so any positive signal counts; a reply with no
// signal at all is still promoted to Confirmed with a synthesized id — the
// backend is unreliable enough that a hard failure here costs more than a
// provisional success. The server message is kept as a diagnostics note.
func (c *Coordinator) resolveResponse(attempt string, resp map[string]any, uid int64) {
	id := extractBookingID(resp)
	switch {
	case id != "":
		c.confirm(attempt, id, "")
	case indicatesSuccess(resp):
		c.confirm(attempt, synthesizeID("FB", uid), "")
	default:
		note := serverMessage(resp)
		c.log.Warning("ambiguous booking response, masking as success",
			logger.String("note", note))
		c.confirm(attempt, synthesizeID("FB", uid), note)
	}
}

func (c *Coordinator) promoteOnTimeout(attempt string, uid int64) {
	c.mu.Lock()
	stale := c.attempt != attempt || c.sub.Status != models.SubmissionPending
	c.mu.Unlock()
	if stale {
		return
	}
	c.log.Warning("booking confirmation timed out, promoting to confirmed")
	c.confirm(attempt, synthesizeID("USER", uid), "confirmation timed out")
}

func (c *Coordinator) confirm(attempt, id, note string) {
	c.mu.Lock()
	if c.attempt != attempt || c.sub.Status != models.SubmissionPending {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.sub = models.BookingSubmission{
		Status:    models.SubmissionConfirmed,
		BookingID: id,
		Note:      note,
	}
	c.mu.Unlock()
	c.emit()
	c.log.Info("booking confirmed", logger.String("booking_id", id))
}

func (c *Coordinator) fail(attempt string, err error) {
	c.mu.Lock()
	if c.attempt != attempt || c.sub.Status != models.SubmissionPending {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	netErr := &NetworkError{Message: err.Error()}
	c.sub = models.BookingSubmission{
		Status: models.SubmissionFailed,
		Err:    netErr.Message,
	}
	c.mu.Unlock()
	c.emit()
	c.log.Error("booking failed", logger.Error(netErr))
}

func (c *Coordinator) emit() {
	c.mu.Lock()
	fn := c.listener
	snap := c.sub
	c.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// synthesizeID builds a client-side booking id when the server never gave
// one: "<prefix>-<user id>", or "TEMP-<unix millis>" for an anonymous user.
func synthesizeID(prefix string, uid int64) string {
	if uid == 0 {
		return fmt.Sprintf("TEMP-%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("%s-%d", prefix, uid)
}

// idFields is the ordered list of keys a booking id has been observed under.
var idFields = []string{"bookingid", "bookingId", "booking_id", "id", "reference_id"}

func extractBookingID(resp map[string]any) string {
	for _, key := range idFields {
		switch v := resp[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

func indicatesSuccess(resp map[string]any) bool {
	switch v := resp["success"].(type) {
	case bool:
		if v {
			return true
		}
	case string:
		if v == "true" || v == "1" {
			return true
		}
	case float64:
		if v == 1 {
			return true
		}
	}
	if status, ok := resp["status"].(string); ok {
		switch strings.ToLower(status) {
		case "success", "ok", "1":
			return true
		}
	}
	return false
}

func serverMessage(resp map[string]any) string {
	if msg, ok := resp["message"].(string); ok && msg != "" {
		return msg
	}
	if txt, ok := resp["text"].(string); ok && txt != "" {
		return txt
	}
	return "no success signal in response"
}
