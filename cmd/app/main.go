package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fooddelivery/cmd"
	adapterhttp "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/geo"
	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/customerrepo"
	"fooddelivery/internal/adapters/out/postgres/dishrepo"
	"fooddelivery/internal/adapters/out/postgres/kitchenworkerrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/generated/servers"

	_ "fooddelivery/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	geocoder, err := geo.NewClient(
		configs.GeocoderBaseURL,
		configs.GeocoderAPIKey,
		time.Duration(mustAtoi("GEOCODER_TIMEOUT_MS", configs.GeocoderTimeoutMS))*time.Millisecond,
	)
	if err != nil {
		log.Fatalf("Error creating geocoder client: %v", err)
	}

	etaCalculator, err := services.NewETACalculator(
		mustParseFloat("COURIER_SPEED_KMH", configs.CourierSpeedKmh),
		mustAtoi("FALLBACK_PREP_MINUTES", configs.FallbackPrepMinutes),
	)
	if err != nil {
		log.Fatalf("Error creating ETA calculator: %v", err)
	}

	root := cmd.NewCompositionRoot(gormDB, geocoder, etaCalculator)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := root.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
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
		GeocoderBaseURL:     goDotEnvVariable("GEOCODER_BASE_URL"),
		GeocoderAPIKey:      goDotEnvVariable("GEOCODER_API_KEY"),
		GeocoderTimeoutMS:   goDotEnvVariable("GEOCODER_TIMEOUT_MS"),
		CourierSpeedKmh:     goDotEnvVariable("COURIER_SPEED_KMH"),
		FallbackPrepMinutes: goDotEnvVariable("FALLBACK_PREP_MINUTES"),
		JWTSecret:           goDotEnvVariable("JWT_SECRET"),
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

func mustAtoi(key string, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return n
}

func mustParseFloat(key string, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return f
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&dishrepo.DishDTO{},
		&customerrepo.CustomerDTO{},
		&courierrepo.CourierDTO{},
		&kitchenworkerrepo.KitchenWorkerDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(adapterhttp.PrincipalMiddleware([]byte(configs.JWTSecret)))

	server := adapterhttp.NewServer(
		root.CreateAddDishToCartCommandHandler(),
		root.CreateCheckoutCommandHandler(),
		root.CreateMarkPreparedCommandHandler(),
		root.CreateTakeOrderCommandHandler(),
		root.CreateMarkDeliveredCommandHandler(),
		root.CreateAddBalanceCommandHandler(),
		root.CreateCreateDishCommandHandler(),
		root.CreateGetCartQueryHandler(),
		root.CreateGetAllDishesQueryHandler(),
		root.CreateGetClaimableOrdersQueryHandler(),
		root.CreateGetUnpreparedOrdersQueryHandler(),
		root.CreateGetCourierOrdersQueryHandler(),
		root.CreateGetAllOrdersQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
