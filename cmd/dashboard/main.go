package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/praditya/siaga/internal/pkg/config"
	"github.com/praditya/siaga/internal/pkg/database"
	"github.com/praditya/siaga/internal/pkg/health"
	"github.com/praditya/siaga/internal/pkg/logger"
	"github.com/praditya/siaga/internal/pkg/middleware"
	natspkg "github.com/praditya/siaga/internal/pkg/nats"
	nrpkg "github.com/praditya/siaga/internal/pkg/newrelic"
	"github.com/praditya/siaga/internal/pkg/server"
	wspkg "github.com/praditya/siaga/internal/pkg/websocket"
	fleetHTTP "github.com/praditya/siaga/services/fleet/handler/http"
	fleetRepository "github.com/praditya/siaga/services/fleet/repository"
	fleetUsecase "github.com/praditya/siaga/services/fleet/usecase"
	"github.com/praditya/siaga/services/monitor/gateway"
	"github.com/praditya/siaga/services/monitor/repository"
	"github.com/praditya/siaga/services/monitor/usecase"

	fleetHandler "github.com/praditya/siaga/services/fleet/handler"
	monitorHandler "github.com/praditya/siaga/services/monitor/handler"
	monitorHTTP "github.com/praditya/siaga/services/monitor/handler/http"
	monitorWS "github.com/praditya/siaga/services/monitor/handler/websocket"
)

func main() {
	appName := "siaga-dashboard"
	configPath := config.GetEnv("CONFIG_PATH", "config/dashboard.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and the application logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Monitor service
	accidentRepo := repository.NewAccidentRepo(configs, postgresClient.GetDB())
	monitorGW := gateway.NewMonitorGW(natsClient)
	monitorUC := usecase.NewMonitorUC(accidentRepo, monitorGW, configs)

	wsManager := wspkg.NewManager()
	dashboardHandler := monitorWS.NewDashboardHandler(wsManager)
	monitorUC.OnSnapshotReplaced(dashboardHandler.NotifySnapshotReplaced)

	accidentHandler := monitorHTTP.NewAccidentHandler(monitorUC)
	videoHandler := monitorHTTP.NewVideoProxyHandler(configs)
	monHandler := monitorHandler.NewHandler(accidentHandler, videoHandler, dashboardHandler)

	// Fleet service
	ambulanceRepo := fleetRepository.NewAmbulanceRepo(configs, postgresClient.GetDB(), redisClient)
	fleetUC := fleetUsecase.NewFleetUC(ambulanceRepo, configs)
	ambulanceHandler := fleetHTTP.NewAmbulanceHandler(fleetUC)
	flHandler := fleetHandler.NewHandler(ambulanceHandler)

	// Activate the snapshot synchronizer before serving traffic
	if err := monitorUC.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start accident monitor", logger.Err(err))
	}
	defer monitorUC.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	monHandler.RegisterRoutes(e)
	flHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.Err(err))
	}
}
