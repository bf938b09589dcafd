package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
	"github.com/rentora/rentora/modules/fleet/infrastructure/persistence"
	fleetcontrollers "github.com/rentora/rentora/modules/fleet/presentation/controllers"
	"github.com/rentora/rentora/modules/fleet/services"
	"github.com/rentora/rentora/pkg/cache"
	"github.com/rentora/rentora/pkg/configuration"
	"github.com/rentora/rentora/pkg/eventbus"
	"github.com/rentora/rentora/pkg/metrics"
	"github.com/rentora/rentora/pkg/middleware"
	"github.com/rentora/rentora/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	publisher := eventbus.NewEventPublisher(logger)
	listCache := cache.New[string, []*vehicle.Vehicle](time.Minute)

	vehicleRepo := persistence.NewVehicleRepository()
	ownerRepo := persistence.NewOwnerRepository()

	vehicleService := services.NewVehicleService(vehicleRepo, publisher, listCache)
	ownerService := services.NewOwnerService(ownerRepo)
	importService := services.NewImportService(vehicleService, ownerService, vehicleRepo, conf.Import, logger)

	controllers := []server.Controller{
		fleetcontrollers.NewVehiclesController(vehicleService),
		fleetcontrollers.NewImportController(importService, conf.MaxUploadSize, logger),
	}
	if conf.Prometheus.Enabled {
		controllers = append(controllers, metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	srv := server.NewHTTPServer(
		controllers,
		middleware.WithPool(pool),
		middleware.WithLogger(logger),
		middleware.RequestLogger(logger),
	)

	logger.Infof("listening on %s", conf.SocketAddress)
	if err := srv.Start(conf.SocketAddress); err != nil {
		panic(err)
	}
}
