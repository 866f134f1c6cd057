package models

type SubmissionStatus string

const (
	SubmissionIdle      SubmissionStatus = "idle"
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionConfirmed SubmissionStatus = "confirmed"
	SubmissionFailed    SubmissionStatus = "failed"
)

// BookingSubmission is a read-only snapshot of one submission attempt.
// BookingID is authoritative once the status is confirmed; it may be a
// server-issued id or a client-synthesized one. Err is set only on failure.
// Note carries the server's message when an ambiguous response was masked
// as success, for diagnostics only.
type BookingSubmission struct {
	Status    SubmissionStatus `json:"status"`
	BookingID string           `json:"booking_id,omitempty"`
	Err       string           `json:"error,omitempty"`
	Note      string           `json:"note,omitempty"`
}

// BookingPayload mirrors the save_bookinginfo request body field for field.
// The tag spelling (childeren, isretrun, ...) is the upstream contract and
// must not be corrected here.
type BookingPayload struct {
	Address        string `json:"Address"`
	Email          string `json:"Email"`
	FirstName      string `json:"FirstName"`
	LastName       string `json:"LastName"`
	MeetGreet      string `json:"MeetGreet"`
	PhoneNo        string `json:"PhoneNo"`
	TransferNo     string `json:"TransferNo"`
	UserID         int64  `json:"UserID"`
	AllStops       string `json:"allstops"`
	Children       int    `json:"childeren"`
	DistanceInKm   string `json:"distanceinkm"`
	DropOffLoc     string `json:"dropofflocation"`
	Infant         int    `json:"infant"`
	IsReturn       int    `json:"isretrun"`
	Passenger      int    `json:"passenger"`
	PickupDate     string `json:"pickupdate"`
	PickupLocation string `json:"pickuplocation"`
	PickupTime     string `json:"pickuptime"`
	ReturnTime     string `json:"returnTime"`
	ReturnDate     string `json:"returndate"`
	VehicleID      string `json:"vehicleId"`
}
