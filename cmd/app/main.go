package main

import (
	"fmt"
	"log/slog"
	"os"

	"delivery-tracking/cmd"
	server "delivery-tracking/internal/adapters/in/http"
	"delivery-tracking/internal/adapters/out/postgres/deliveryrepo"
	"delivery-tracking/internal/adapters/out/postgres/driverrepo"
	"delivery-tracking/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, relying on process environment")
	}

	configs := getConfigs()
	gormDB := mustConnectDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateAssignDriverCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:    os.Getenv("HTTP_PORT"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSslMode:   os.Getenv("DB_SSLMODE"),
		MapsBaseURL: os.Getenv("MAPS_BASE_URL"),
		MapsTimeout: os.Getenv("MAPS_TIMEOUT"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		EtaCacheTTL: os.Getenv("ETA_CACHE_TTL"),
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &driverrepo.DriverDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	srv := server.NewServer(
		root.CreateCreateDeliveryCommandHandler(),
		root.CreateUpdateDeliveryStatusCommandHandler(),
		root.CreateUpdateDeliveryLocationCommandHandler(),
		root.CreateRateDeliveryCommandHandler(),
		root.CreateCreateDriverCommandHandler(),
		root.CreateGetDeliveryByIDQueryHandler(),
		root.CreateGetDeliveryByOrderIDQueryHandler(),
		root.CreateGetDeliveriesByDriverIDQueryHandler(),
		root.CreateGetAllDeliveriesQueryHandler(),
		root.CreateGetAllDriversQueryHandler(),
	)

	e := echo.New()
	srv.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
