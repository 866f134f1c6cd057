package booking

import "fmt"

type ValidationReason string

const (
	ReasonMissingPickup      ValidationReason = "missing_pickup"
	ReasonMissingDrop        ValidationReason = "missing_drop"
	ReasonNoPassengers       ValidationReason = "no_passengers"
	ReasonReturnBeforePickup ValidationReason = "return_before_pickup"
	ReasonNoVehicle          ValidationReason = "no_vehicle"
)

var reasonText = map[ValidationReason]string{
	ReasonMissingPickup:      "Please enter a pickup location",
	ReasonMissingDrop:        "Please enter a drop-off location",
	ReasonNoPassengers:       "Please select at least one passenger",
	ReasonReturnBeforePickup: "Return time must be after pickup time",
	ReasonNoVehicle:          "Please select a vehicle",
}

// ValidationError is a pre-flight rejection. It never reaches the network;
// the user recovers by editing the draft.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	if msg, ok := reasonText[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

// NetworkError is an explicit transport or server failure on submission.
type NetworkError struct {
	Message string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s", e.Message)
}
