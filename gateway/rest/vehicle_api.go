package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"ridebook/pkg/models"
)

type vehicleAPI struct {
	c *Client
}

func (a *vehicleAPI) FetchAll(ctx context.Context) ([]models.VehicleOption, error) {
	data, _, err := a.c.request(ctx, http.MethodGet, "/get_vehicles_list", nil)
	if err != nil {
		return nil, err
	}

	result, ok := data["result"].([]any)
	if !ok {
		// No result envelope means no vehicles, not a failure.
		return []models.VehicleOption{}, nil
	}

	vehicles := make([]models.VehicleOption, 0, len(result))
	for _, entry := range result {
		raw, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		var v models.VehicleOption
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
