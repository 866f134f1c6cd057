package models

// VehicleOption is one bookable vehicle type as served by get_vehicles_list.
type VehicleOption struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	PricePerKm      float64 `json:"price_per_km"`
	Doors           int     `json:"doors,omitempty"`
	HorsePower      string  `json:"horse_power,omitempty"`
	Image           string  `json:"image,omitempty"`
	Model           int     `json:"model,omitempty"`
	SeatingCapacity int     `json:"seating_capacity,omitempty"`
	Shape           string  `json:"shape,omitempty"`
	Status          int     `json:"status,omitempty"`
}
