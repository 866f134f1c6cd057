package models

// PriceEstimate is derived from a draft plus a selected vehicle. It is never
// persisted; it is recomputed whenever route or vehicle changes.
type PriceEstimate struct {
	DistanceKm      float64 `json:"distance_in_km"`
	DurationLabel   string  `json:"duration_label"`
	DurationSeconds int     `json:"duration_seconds"`
}
