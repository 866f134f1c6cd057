package gateway

import (
	"context"

	"ridebook/pkg/models"
)

// IGateway is the client's view of the remote booking API. One sub-interface
// per upstream concern, mirroring how the endpoints are grouped server-side.
type IGateway interface {
	Vehicle() IVehicleAPI
	Booking() IBookingAPI
}

type IVehicleAPI interface {
	// FetchAll returns the bookable vehicle types. A malformed or missing
	// result envelope yields an empty list, not an error.
	FetchAll(ctx context.Context) ([]models.VehicleOption, error)
}

type IBookingAPI interface {
	// Submit posts a booking and returns the decoded response body as-is.
	// The upstream success shape is not stable, so interpretation of the
	// body is left to the caller.
	Submit(ctx context.Context, payload models.BookingPayload) (map[string]any, error)
	CustomerBookings(ctx context.Context, userID int64) ([]models.Booking, int, error)
}
