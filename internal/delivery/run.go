package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Params collects every Delivery provided into the "deliveries" group.
// Providers may return nil for a delivery that is switched off by config.
type Params struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// AsDelivery annotates a constructor so its result joins the group.
func AsDelivery(constructor any) any {
	return fx.Annotate(constructor, fx.ResultTags(`group:"deliveries"`))
}

// Run serves each delivery on its own goroutine. The first one to fail
// shuts the application down with exit code 1, which runs the OnStop hooks.
func Run(ctx context.Context, params Params) {
	for _, d := range params.Deliveries {
		if d == nil {
			continue
		}
		go serve(ctx, d, params)
	}
}

func serve(ctx context.Context, d Delivery, params Params) {
	err := d.Serve(ctx)
	if err == nil {
		return
	}

	params.Logger.Error("Delivery failed", slog.Any("error", err))
	if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
		params.Logger.Error("Failed to shut down gracefully", slog.Any("error", shutdownErr))
		os.Exit(1)
	}
}
