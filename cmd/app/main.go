package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/clientrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/trailerrepo"
	"logistics/internal/adapters/out/postgres/truckrepo"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultFuelRate = 0.38

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateReconcileResourcesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		FuelRate:   fuelRateVariable(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func fuelRateVariable() float64 {
	raw := goDotEnvVariable("FUEL_RATE")
	if raw == "" {
		return defaultFuelRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid FUEL_RATE value %q: %v", raw, err)
	}
	return rate
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&clientrepo.ClientDTO{},
		&driverrepo.DriverDTO{},
		&truckrepo.TruckDTO{},
		&trailerrepo.TrailerDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	completeOrderHandler, err := app.CreateCompleteOrderCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create complete order handler: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		completeOrderHandler,
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateClientCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateCreateTruckCommandHandler(),
		app.CreateCreateTrailerCommandHandler(),
		app.CreateArchiveResourceCommandHandler(),
		app.CreateRestoreResourceCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetCompletedOrdersQueryHandler(),
		app.CreateGetAvailableResourcesQueryHandler(),
		app.CreateCompletedOrdersReport(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
