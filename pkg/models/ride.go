package models

import "time"

type PassengerType string

const (
	PassengerAdult  PassengerType = "Adult"
	PassengerChild  PassengerType = "Child"
	PassengerInfant PassengerType = "Infant"
)

type Passenger struct {
	Type     PassengerType `json:"type"`
	Count    int           `json:"count"`
	AgeRange string        `json:"ageRange"`
}

// RideDraft is the in-progress trip being assembled by the booking wizard.
// Date carries the calendar day and Time the clock time of the pickup; the
// same split applies to the return pair.
type RideDraft struct {
	PickupLocation string      `json:"pickupLocation"`
	DropLocation   string      `json:"dropLocation"`
	Stops          []string    `json:"stops"`
	Date           time.Time   `json:"date"`
	Time           time.Time   `json:"time"`
	ReturnDate     time.Time   `json:"returnDate"`
	ReturnTime     time.Time   `json:"returnTime"`
	HasReturn      bool        `json:"hasReturn"`
	Passengers     []Passenger `json:"passengers"`
}

// PickupAt combines the day of Date with the clock of Time into one instant.
func (d RideDraft) PickupAt() time.Time {
	return combine(d.Date, d.Time)
}

func (d RideDraft) ReturnAt() time.Time {
	return combine(d.ReturnDate, d.ReturnTime)
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

func (d RideDraft) TotalPassengers() int {
	total := 0
	for _, p := range d.Passengers {
		total += p.Count
	}
	return total
}

func (d RideDraft) PassengerCount(t PassengerType) int {
	for _, p := range d.Passengers {
		if p.Type == t {
			return p.Count
		}
	}
	return 0
}
