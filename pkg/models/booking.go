package models

// Booking is one entry of the customer booking history.
type Booking struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	BookingDate  string  `json:"booking_date"`
	ReferenceID  string  `json:"reference_id"`
	Pickup       string  `json:"pickup,omitempty"`
	DropOff      string  `json:"drop_off"`
	PricePerKm   float64 `json:"price_per_km"`
	DistanceInKm float64 `json:"distance_in_km"`
	Status       string  `json:"status,omitempty"`
}
