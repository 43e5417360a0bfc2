package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"parcelrelay/cmd"
	httpadapter "parcelrelay/internal/adapters/in/http"
	"parcelrelay/internal/adapters/out/postgres/accountrepo"
	"parcelrelay/internal/adapters/out/postgres/addressrepo"
	"parcelrelay/internal/adapters/out/postgres/orderrepo"
	"parcelrelay/internal/adapters/out/postgres/parcelrepo"
	"parcelrelay/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateReconcileParcelStatusCommandHandler(),
		configs.ReconcileCron,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		AllowSenderSelfClaim: goDotEnvBool("ALLOW_SENDER_SELF_CLAIM", true),
		ReconcileCron:        goDotEnvDefault("RECONCILE_CRON", "*/30 * * * * *"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvDefault(key string, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func goDotEnvBool(key string, fallback bool) bool {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Invalid boolean value for %s: %q", key, value)
	}
	return parsed
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&addressrepo.AddressDTO{},
		&parcelrepo.ParcelDTO{},
		&orderrepo.OrderDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterAccountCommandHandler(),
		app.CreateCreateAddressCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateFinishOrderCommandHandler(),
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetMyDeliveriesQueryHandler(),
		app.CreateGetMyParcelsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
