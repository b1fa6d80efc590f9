package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pedidos/cmd"
	httpserver "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/postgres/clientrepo"
	"pedidos/internal/adapters/out/postgres/driverrepo"
	"pedidos/internal/adapters/out/postgres/loanrepo"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/adapters/out/postgres/productrepo"
	"pedidos/internal/adapters/out/postgres/zonerepo"
	"pedidos/internal/jobs"
	"pedidos/internal/pkg/logger"
)

func main() {
	configs := getConfigs()

	log := logger.New(logger.Options{
		ServiceName: "pedidos",
		Level:       logger.ParseLevel(configs.LogLevel),
	})
	ctx := context.Background()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}

	if err := migrate(gormDB); err != nil {
		log.Error(ctx, "failed to run migrations", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetUnassignedOrdersQueryHandler(),
		app.CreateGetOverdueLoansQueryHandler(),
		log,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Error(ctx, "failed to start jobs", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine, variables may come from the environment directly.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return config
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&clientrepo.ClientDTO{},
		&clientrepo.AddressDTO{},
		&productrepo.ProductDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&loanrepo.LoanDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpserver.NewServer(app.Handlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
