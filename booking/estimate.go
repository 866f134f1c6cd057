package booking

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"ridebook/pkg/models"
)

// Estimator turns a draft and a selected vehicle into a price estimate.
// Callers must not invoke it without a selected vehicle; the coordinator
// redirects the user back to vehicle selection instead.
type Estimator interface {
	Estimate(draft models.RideDraft, vehicle models.VehicleOption) models.PriceEstimate
}

// RouteStub is a deterministic stand-in for a real routing service. It
// derives a stable pseudo-distance from the route text so that the same
// trip always prices the same. Swap it for a live implementation behind
// the Estimator interface when one exists.
type RouteStub struct {
	// AverageSpeedKmh drives the duration estimate. Zero means 80.
	AverageSpeedKmh float64
}

func (r RouteStub) Estimate(draft models.RideDraft, vehicle models.VehicleOption) models.PriceEstimate {
	route := strings.Join(append([]string{draft.PickupLocation}, append(draft.Stops, draft.DropLocation)...), "|")

	h := fnv.New32a()
	h.Write([]byte(route))
	// 5.00 .. 154.99 km, two-decimal resolution.
	distance := 5 + float64(h.Sum32()%15000)/100

	speed := r.AverageSpeedKmh
	if speed <= 0 {
		speed = 80
	}
	seconds := int(distance / speed * 3600)

	return models.PriceEstimate{
		DistanceKm:      distance,
		DurationSeconds: seconds,
		DurationLabel:   formatDuration(seconds),
	}
}

// TotalPrice is the display total: per-km rate times distance, rounded to
// two decimals.
func TotalPrice(vehicle models.VehicleOption, estimate models.PriceEstimate) float64 {
	return math.Round(vehicle.PricePerKm*estimate.DistanceKm*100) / 100
}

func FormatPrice(total float64) string {
	return fmt.Sprintf("$%.2f", total)
}

func formatDuration(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	parts := []string{}
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", h, plural(h, "hour")))
	}
	parts = append(parts, fmt.Sprintf("%d minutes", m), fmt.Sprintf("%d seconds", s))
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
