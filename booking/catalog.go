package booking

import (
	"context"
	"sync"

	"ridebook/gateway"
	"ridebook/pkg/logger"
	"ridebook/pkg/models"
)

// Catalog holds the vehicle options fetched for the current wizard session
// plus the user's selection. The fetched list is treated as immutable;
// selection is a pointer update only.
type Catalog struct {
	mu       sync.Mutex
	api      gateway.IVehicleAPI
	log      logger.ILogger
	vehicles []models.VehicleOption
	selected *models.VehicleOption
}

func NewCatalog(api gateway.IVehicleAPI, log logger.ILogger) *Catalog {
	return &Catalog{api: api, log: log}
}

// FetchAll loads the catalog. On transport failure the stored list becomes
// empty and the error is returned for the caller to render a retry; the
// fetch is never retried automatically.
func (c *Catalog) FetchAll(ctx context.Context) ([]models.VehicleOption, error) {
	vehicles, err := c.api.FetchAll(ctx)
	if err != nil {
		c.log.Error("vehicle catalog fetch failed", logger.Error(err))
		vehicles = []models.VehicleOption{}
	}

	c.mu.Lock()
	c.vehicles = vehicles
	c.selected = nil
	c.mu.Unlock()
	return vehicles, err
}

// Select marks one vehicle as chosen. An id not present in the last fetched
// list clears the selection instead of crashing.
func (c *Catalog) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.vehicles {
		if c.vehicles[i].ID == id {
			v := c.vehicles[i]
			c.selected = &v
			return
		}
	}
	c.selected = nil
}

func (c *Catalog) Selected() *models.VehicleOption {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	v := *c.selected
	return &v
}

func (c *Catalog) Vehicles() []models.VehicleOption {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.VehicleOption(nil), c.vehicles...)
}
