package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"myfood/cmd"
	httpin "myfood/internal/adapters/in/http"
	"myfood/internal/adapters/out/postgres/deliveryrepo"
	"myfood/internal/adapters/out/postgres/orderrepo"
	"myfood/internal/adapters/out/postgres/registryrepo"
	"myfood/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrate(db)

	app := cmd.NewCompositionRoot(configs, db)

	if configs.DispatchJobEnabled == "true" {
		jobManager := jobs.NewJobManager(
			app.CreateSelectOrderForCourierQueryHandler(),
			app.CreateCreateDeliveryCommandHandler(),
			app.Registry(),
			slog.Default(),
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		DispatchJobEnabled: goDotEnvVariable("DISPATCH_JOB_ENABLED"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&registryrepo.UserDTO{},
		&registryrepo.CompanyDTO{},
		&registryrepo.ProductDTO{},
		&registryrepo.CourierCompanyDTO{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	// AutoMigrate does not manage sequences. Both outlive rollbacks so
	// allocated numbers are never reused.
	for _, name := range []string{"order_numbers", "delivery_ids"} {
		if err = db.Exec("CREATE SEQUENCE IF NOT EXISTS " + name).Error; err != nil {
			log.Fatalf("Error creating sequence %s: %v", name, err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateCloseOrderCommandHandler(),
		app.CreateMarkOrderReadyCommandHandler(),
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateGetOrderAttributeQueryHandler(),
		app.CreateGetOrderNumberQueryHandler(),
		app.CreateGetDeliveryAttributeQueryHandler(),
		app.CreateGetDeliveryForOrderQueryHandler(),
		app.CreateSelectOrderForCourierQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
