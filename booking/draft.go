package booking

import (
	"strings"
	"sync"
	"time"

	"ridebook/pkg/models"
)

// MaxStops bounds the extra waypoints a ride may carry.
const MaxStops = 3

// DraftStore is the single source of truth for the trip being assembled.
// It is shared across wizard steps and survives until the booking succeeds
// or the user cancels. Mutations go through the declared methods only.
type DraftStore struct {
	mu    sync.Mutex
	draft models.RideDraft
}

func NewDraftStore() *DraftStore {
	s := &DraftStore{}
	s.draft = freshDraft()
	return s
}

func freshDraft() models.RideDraft {
	now := time.Now()
	return models.RideDraft{
		Date:       now,
		Time:       now,
		ReturnDate: now,
		ReturnTime: now,
		Passengers: []models.Passenger{
			{Type: models.PassengerAdult, Count: 0, AgeRange: "12+ years"},
			{Type: models.PassengerChild, Count: 0, AgeRange: "2-11 years"},
			{Type: models.PassengerInfant, Count: 0, AgeRange: "Under 2 years"},
		},
	}
}

func (s *DraftStore) SetPickup(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.PickupLocation = text
}

func (s *DraftStore) SetDrop(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.DropLocation = text
}

// AddStop appends an empty waypoint slot. It reports false once the draft
// already holds MaxStops; the list is left unchanged and the caller is
// expected to show a notice rather than treat it as an error.
func (s *DraftStore) AddStop(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.draft.Stops) >= MaxStops {
		return false
	}
	s.draft.Stops = append(s.draft.Stops, text)
	return true
}

func (s *DraftStore) UpdateStop(index int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Stops) {
		return
	}
	s.draft.Stops[index] = text
}

func (s *DraftStore) RemoveStop(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.draft.Stops) {
		return
	}
	s.draft.Stops = append(s.draft.Stops[:index], s.draft.Stops[index+1:]...)
}

// SetPassengerCount adjusts one category by delta, clamped at zero.
func (s *DraftStore) SetPassengerCount(t models.PassengerType, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.draft.Passengers {
		if s.draft.Passengers[i].Type != t {
			continue
		}
		count := s.draft.Passengers[i].Count + delta
		if count < 0 {
			count = 0
		}
		s.draft.Passengers[i].Count = count
		return
	}
}

func (s *DraftStore) SetDate(v time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Date = v
}

func (s *DraftStore) SetTime(v time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Time = v
}

func (s *DraftStore) SetReturnDate(v time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.ReturnDate = v
}

func (s *DraftStore) SetReturnTime(v time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.ReturnTime = v
}

func (s *DraftStore) SetHasReturn(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.HasReturn = v
}

// Snapshot returns a copy safe to read while the store keeps mutating.
func (s *DraftStore) Snapshot() models.RideDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.draft
	draft.Stops = append([]string(nil), s.draft.Stops...)
	draft.Passengers = append([]models.Passenger(nil), s.draft.Passengers...)
	return draft
}

// Clear resets the draft to wizard-entry defaults.
func (s *DraftStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = freshDraft()
}

// Validate checks the draft against the submission rules. It is pure: no
// mutation, no side effects.
func (s *DraftStore) Validate() error {
	return ValidateDraft(s.Snapshot())
}

func ValidateDraft(draft models.RideDraft) error {
	if strings.TrimSpace(draft.PickupLocation) == "" {
		return &ValidationError{Reason: ReasonMissingPickup}
	}
	if strings.TrimSpace(draft.DropLocation) == "" {
		return &ValidationError{Reason: ReasonMissingDrop}
	}
	if draft.TotalPassengers() == 0 {
		return &ValidationError{Reason: ReasonNoPassengers}
	}
	if draft.HasReturn && !draft.ReturnAt().After(draft.PickupAt()) {
		return &ValidationError{Reason: ReasonReturnBeforePickup}
	}
	return nil
}
