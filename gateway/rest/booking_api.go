package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ridebook/pkg/models"
)

type bookingAPI struct {
	c *Client
}

func (a *bookingAPI) Submit(ctx context.Context, payload models.BookingPayload) (map[string]any, error) {
	data, _, err := a.c.request(ctx, http.MethodPost, "/save_bookinginfo", payload)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (a *bookingAPI) CustomerBookings(ctx context.Context, userID int64) ([]models.Booking, int, error) {
	path := fmt.Sprintf("/get_customer_bookings/%d", userID)
	data, _, err := a.c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, 0, err
	}

	// The endpoint sometimes wraps the list in a success envelope and
	// sometimes returns it bare; accept both.
	if status, ok := data["status"].(string); ok && status != "success" {
		return nil, 0, fmt.Errorf("%s", errorMessage(data, http.StatusOK))
	}

	var bookings []models.Booking
	for _, key := range []string{"bookings", "result"} {
		list, ok := data[key].([]any)
		if !ok {
			continue
		}
		for _, entry := range list {
			raw, err := json.Marshal(entry)
			if err != nil {
				continue
			}
			var b models.Booking
			if err := json.Unmarshal(raw, &b); err != nil {
				continue
			}
			bookings = append(bookings, b)
		}
		break
	}

	total := len(bookings)
	if n, ok := data["totalBookings"].(float64); ok {
		total = int(n)
	}
	return bookings, total, nil
}
