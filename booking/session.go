package booking

import (
	"fmt"
	"strings"
	"time"

	"ridebook/pkg/models"
)

// SessionProvider supplies the signed-in user. Authentication itself lives
// outside this package; only the identity read is needed here.
type SessionProvider interface {
	CurrentUser() (*models.User, error)
}

// Extras are the customer-info form fields that belong to the booking but
// not to the ride draft.
type Extras struct {
	FlightNo  string
	MeetGreet string
}

// BuildPayload assembles the save_bookinginfo body from the draft snapshot,
// the selected vehicle, the price estimate and the session identity.
func BuildPayload(draft models.RideDraft, vehicle models.VehicleOption, estimate models.PriceEstimate, user models.User, extras Extras) models.BookingPayload {
	first, last := splitName(user.FullName)

	isReturn := 0
	if draft.HasReturn {
		isReturn = 1
	}

	return models.BookingPayload{
		Address:        user.Address,
		Email:          user.Email,
		FirstName:      first,
		LastName:       last,
		MeetGreet:      extras.MeetGreet,
		PhoneNo:        user.Phone,
		TransferNo:     extras.FlightNo,
		UserID:         user.ID,
		AllStops:       strings.Join(draft.Stops, ", "),
		Children:       draft.PassengerCount(models.PassengerChild),
		DistanceInKm:   fmt.Sprintf("%.2f", estimate.DistanceKm),
		DropOffLoc:     draft.DropLocation,
		Infant:         draft.PassengerCount(models.PassengerInfant),
		IsReturn:       isReturn,
		Passenger:      draft.PassengerCount(models.PassengerAdult),
		PickupDate:     draft.Date.UTC().Format(time.RFC3339),
		PickupLocation: draft.PickupLocation,
		PickupTime:     draft.Time.Format("3:04 PM"),
		ReturnTime:     draft.ReturnTime.Format("3:04 PM"),
		ReturnDate:     draft.ReturnDate.UTC().Format(time.RFC3339),
		VehicleID:      vehicle.ID,
	}
}

func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
