package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	redisadapter "foodorder/internal/adapters/out/redis"
	"foodorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const menuCacheTTL = 5 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	publisher := kafka.NewPublisher([]string{configs.KafkaHost}, configs.KafkaOrderEventsTopic)
	defer func() { _ = publisher.Close() }()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	defer func() { _ = redisClient.Close() }()
	menuCache := redisadapter.NewMenuCache(redisClient, menuCacheTTL)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, menuCache)

	jobManager := jobs.NewJobManager(
		app.CreateAssignDriversCommandHandler(),
		app.CreateGetMenuQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		PublicBaseURL:         goDotEnvVariable("PUBLIC_BASE_URL"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:             goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:         goDotEnvVariable("REDIS_PASSWORD"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
		JWTSecret:             goDotEnvVariable("JWT_SECRET"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&menurepo.MenuItemDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	handlers := httpadapter.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
		AssignDriver:      app.CreateAssignDriverCommandHandler(),
		CreateMenuItem:    app.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:    app.CreateUpdateMenuItemCommandHandler(),
		RemoveMenuItem:    app.CreateRemoveMenuItemCommandHandler(),
		RenameCategory:    app.CreateRenameCategoryCommandHandler(),
		CreateUser:        app.CreateCreateUserCommandHandler(),
		UpdateUser:        app.CreateUpdateUserCommandHandler(),

		GetOrders:      app.CreateGetOrdersQueryHandler(),
		GetOrder:       app.CreateGetOrderQueryHandler(),
		TrackOrder:     app.CreateTrackOrderQueryHandler(),
		GetMenu:        app.CreateGetMenuQueryHandler(),
		GetUsers:       app.CreateGetUsersQueryHandler(),
		GetSalesReport: app.CreateGetSalesReportQueryHandler(),
	}

	server := httpadapter.NewServer(handlers, app.MenuCache(), configs.JWTSecret, configs.PublicBaseURL)
	server.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
