package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cast"

	"ridebook/booking"
	"ridebook/config"
	"ridebook/gateway/rest"
	"ridebook/pkg/logger"
	"ridebook/pkg/models"
)

// envSession is a stand-in session provider for the demo binary. The real
// app owns authentication elsewhere and hands the core an identity.
type envSession struct{}

func (envSession) CurrentUser() (*models.User, error) {
	return &models.User{
		ID:       cast.ToInt64(envOr("DEMO_USER_ID", "1")),
		FullName: envOr("DEMO_USER_NAME", "Demo Rider"),
		Email:    envOr("DEMO_USER_EMAIL", "demo@example.com"),
		Phone:    envOr("DEMO_USER_PHONE", "+441214960000"),
		Address:  envOr("DEMO_USER_ADDRESS", "647 Stratford Rd, Birmingham"),
	}, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	gw := rest.New(cfg, log)

	draft := booking.NewDraftStore()
	catalog := booking.NewCatalog(gw.Vehicle(), log)
	coordinator := booking.NewCoordinator(gw.Booking(), envSession{}, cfg.ConfirmFallback, log)
	estimator := booking.RouteStub{}

	ctx := context.Background()

	vehicles, err := catalog.FetchAll(ctx)
	if err != nil {
		log.Error("could not load vehicle catalog", logger.Error(err))
		os.Exit(1)
	}
	if len(vehicles) == 0 {
		log.Error("vehicle catalog is empty")
		os.Exit(1)
	}
	catalog.Select(vehicles[0].ID)

	draft.SetPickup("647 Stratford Rd, Birmingham B11 4DY, UK")
	draft.SetDrop("48GM+RC, Dover CT16 1JA, UK")
	draft.SetPassengerCount(models.PassengerAdult, 2)
	draft.SetDate(time.Now().Add(24 * time.Hour))
	draft.SetTime(time.Now().Add(24 * time.Hour))

	vehicle := catalog.Selected()
	estimate := estimator.Estimate(draft.Snapshot(), *vehicle)
	fmt.Printf("%s: %.2f km, %s, %s\n",
		vehicle.Title,
		estimate.DistanceKm,
		estimate.DurationLabel,
		booking.FormatPrice(booking.TotalPrice(*vehicle, estimate)))

	// Confirmation presenter: renders exactly once per confirmed attempt and
	// tells the draft store to clear.
	done := make(chan struct{})
	rendered := false
	coordinator.Subscribe(func(sub models.BookingSubmission) {
		switch sub.Status {
		case models.SubmissionConfirmed:
			if rendered {
				return
			}
			rendered = true
			fmt.Printf("Booking confirmed: %s\n", sub.BookingID)
			draft.Clear()
			close(done)
		case models.SubmissionFailed:
			fmt.Printf("Booking failed: %s\n", sub.Err)
			close(done)
		}
	})

	if err := coordinator.Submit(ctx, draft.Snapshot(), vehicle, estimator, booking.Extras{}); err != nil {
		log.Error("submission rejected", logger.Error(err))
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-done:
	case <-quit:
		coordinator.Reset()
	}
}
