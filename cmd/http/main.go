package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/delivery/http/routers"
	"timetable-service/internal/app/drivers/database"
	"timetable-service/internal/app/drivers/logger"
	"timetable-service/internal/app/drivers/messaging"
	"timetable-service/internal/app/services/schedules"
	"timetable-service/internal/app/services/shared/eventqueue"
	"timetable-service/internal/app/services/shared/identity"
	"timetable-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared collaborators
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	identityClient := identity.NewIdentityClient(bootstrap.InternalConfig.Identity.BaseUrl)

	eventPublisher, err := eventqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.ScheduleEventQueue,
	)
	if err != nil {
		logrus.Fatalf("Failed to set up schedule event queue: %s", err.Error())
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Schedules
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	scheduleUsecase := schedules.NewScheduleUsecase(
		scheduleMongoRepository,
		redisRepository,
		identityClient,
		eventPublisher,
		bootstrap.Logger,
		time.Duration(bootstrap.InternalConfig.App.ActiveScheduleCacheTTLInMinute)*time.Minute,
		bootstrap.InternalConfig.App.SaveRetryAttempts,
	)
	scheduleController := schedules.NewScheduleController(bootstrap.Logger, scheduleUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, scheduleController)
}
