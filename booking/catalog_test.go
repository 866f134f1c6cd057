package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridebook/booking"
	"ridebook/gateway"
	"ridebook/pkg/logger"
	"ridebook/pkg/models"
)

// mockVehicleAPI is a hand-written double for gateway.IVehicleAPI.
type mockVehicleAPI struct {
	fetchAll func(ctx context.Context) ([]models.VehicleOption, error)
}

func (m *mockVehicleAPI) FetchAll(ctx context.Context) ([]models.VehicleOption, error) {
	return m.fetchAll(ctx)
}

var _ gateway.IVehicleAPI = (*mockVehicleAPI)(nil)

func testLogger() logger.ILogger {
	return logger.New("test", "error")
}

func sampleVehicles() []models.VehicleOption {
	return []models.VehicleOption{
		{ID: "sedan", Title: "Sedan", PricePerKm: 2},
		{ID: "van", Title: "Van", PricePerKm: 3.5, SeatingCapacity: 8},
	}
}

func TestCatalog_FetchAllStoresVehicles(t *testing.T) {
	api := &mockVehicleAPI{
		fetchAll: func(context.Context) ([]models.VehicleOption, error) {
			return sampleVehicles(), nil
		},
	}
	catalog := booking.NewCatalog(api, testLogger())

	vehicles, err := catalog.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, vehicles, 2)
	assert.Equal(t, sampleVehicles(), catalog.Vehicles())
}

func TestCatalog_FetchAllFailureYieldsEmptyListAndError(t *testing.T) {
	api := &mockVehicleAPI{
		fetchAll: func(context.Context) ([]models.VehicleOption, error) {
			return nil, errors.New("connection refused")
		},
	}
	catalog := booking.NewCatalog(api, testLogger())

	vehicles, err := catalog.FetchAll(context.Background())

	require.Error(t, err)
	assert.Empty(t, vehicles)
	assert.Empty(t, catalog.Vehicles())
}

func TestCatalog_Select(t *testing.T) {
	api := &mockVehicleAPI{
		fetchAll: func(context.Context) ([]models.VehicleOption, error) {
			return sampleVehicles(), nil
		},
	}
	catalog := booking.NewCatalog(api, testLogger())
	_, err := catalog.FetchAll(context.Background())
	require.NoError(t, err)

	catalog.Select("van")
	selected := catalog.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "van", selected.ID)

	// Selecting an id outside the fetched list clears the selection.
	catalog.Select("helicopter")
	assert.Nil(t, catalog.Selected())
}

func TestCatalog_SelectedReturnsCopy(t *testing.T) {
	api := &mockVehicleAPI{
		fetchAll: func(context.Context) ([]models.VehicleOption, error) {
			return sampleVehicles(), nil
		},
	}
	catalog := booking.NewCatalog(api, testLogger())
	_, err := catalog.FetchAll(context.Background())
	require.NoError(t, err)

	catalog.Select("sedan")
	first := catalog.Selected()
	first.Title = "mutated"

	assert.Equal(t, "Sedan", catalog.Selected().Title)
}
