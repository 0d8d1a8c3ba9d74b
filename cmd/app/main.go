package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"coldchain/cmd"
	httpadapter "coldchain/internal/adapters/in/http"
	"coldchain/internal/adapters/out/postgres/handlerrepo"
	"coldchain/internal/adapters/out/postgres/sequencerepo"
	"coldchain/internal/adapters/out/postgres/shipmentrepo"
	"coldchain/internal/adapters/out/postgres/templogrepo"
	"coldchain/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDatabase(configs)
	mustMigrate(db, configs)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	jobManager := app.CreateJobManager(configs.ComplianceWatchSpec)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		RegistryOwner:       goDotEnvVariable("REGISTRY_OWNER"),
		ComplianceWatchSpec: goDotEnvVariable("COMPLIANCE_WATCH_SPEC"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey,
	// which the repositories map to already-exists.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB, configs cmd.Config) {
	err := db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&templogrepo.EntryDTO{},
		&handlerrepo.AuthorizedHandlerDTO{},
		&sequencerepo.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = sequencerepo.Seed(db); err != nil {
		log.Fatalf("Failed to seed sequence counter: %v", err)
	}

	bootstrapOwner(db, configs)
}

// bootstrapOwner pre-authorizes the registry owner so operational tooling run
// under the owner principal can log readings and report emergencies without a
// separate grant call after every fresh deployment.
func bootstrapOwner(db *gorm.DB, configs cmd.Config) {
	owner, err := kernel.NewPrincipal(configs.RegistryOwner)
	if err != nil {
		log.Fatalf("Invalid registry owner: %v", err)
	}

	registry := handlerrepo.NewGormHandlerRegistry(db)
	if err := registry.Grant(context.Background(), owner); err != nil {
		log.Fatalf("Failed to bootstrap registry owner: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		httpadapter.NewLogicalClock(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateLogTemperatureCommandHandler(),
		app.CreateTransferCustodyCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateReportEmergencyCommandHandler(),
		app.CreateGrantHandlerCommandHandler(),
		app.CreateRevokeHandlerCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetShipmentStatusQueryHandler(),
		app.CreateGetTemperatureLogQueryHandler(),
		app.CreateGetQualityAssessmentQueryHandler(),
		app.CreateIsTemperatureCompliantQueryHandler(),
		app.CreateIsAuthorizedHandlerQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
