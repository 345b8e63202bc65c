// File: salonflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonflow/config"
	"salonflow/cron"
	"salonflow/database"
	appointmentRepoPkg "salonflow/database/repository/appointment"
	clientRepoPkg "salonflow/database/repository/client"
	notificationRepoPkg "salonflow/database/repository/notification"
	scheduleRepoPkg "salonflow/database/repository/schedule"
	serviceRepoPkg "salonflow/database/repository/service"
	staffRepoPkg "salonflow/database/repository/staff"
	vacationRepoPkg "salonflow/database/repository/vacation"
	"salonflow/handlers"
	"salonflow/middleware"
	"salonflow/routes"
	"salonflow/services/appointment"
	"salonflow/services/catalogue"
	"salonflow/services/client"
	"salonflow/services/notification"
	"salonflow/services/scheduling"
	"salonflow/services/staff"
	"salonflow/services/vacation"
	"salonflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	schedRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	vacRepo := vacationRepoPkg.NewMongoVacationRepo()
	stfRepo := staffRepoPkg.NewMongoStaffRepo()
	clRepo := clientRepoPkg.NewMongoClientRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	for name, repo := range map[string]interface{ EnsureIndexes() error }{
		"appointments":  apptRepo,
		"working_hours": schedRepo,
		"vacations":     vacRepo,
		"staff":         stfRepo,
		"clients":       clRepo,
		"services":      svcRepo,
		"notifications": notifRepo,
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Core engine and services.
	engine := scheduling.NewEngine(apptRepo, schedRepo, vacRepo)
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	notificationService := notification.NewDefaultNotificationService(notifRepo, queueClient)

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:     apptRepo,
		Services: svcRepo,
		Staff:    stfRepo,
		Clients:  clRepo,
		Engine:   engine,
		Locker:   utils.NewLocker(utils.GetLockClient()),
		Notifier: notificationService,
	}
	vacationService := &vacation.DefaultVacationService{
		Repo:     vacRepo,
		Staff:    stfRepo,
		Engine:   engine,
		Notifier: notificationService,
	}
	staffService := &staff.DefaultStaffService{Repo: stfRepo}
	clientService := &client.DefaultClientService{Repo: clRepo}
	catalogueService := &catalogue.DefaultCatalogueService{Repo: svcRepo, Cache: utils.GetCacheClient()}

	// Handlers.
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	availabilityHandler := handlers.NewAvailabilityHandler(engine, catalogueService)
	scheduleHandler := handlers.NewScheduleHandler(engine)
	vacationHandler := handlers.NewVacationHandler(vacationService)
	staffHandler := handlers.NewStaffHandler(staffService)
	clientHandler := handlers.NewClientHandler(clientService)
	catalogueHandler := handlers.NewCatalogueHandler(catalogueService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo:  stfRepo,
		ClientRepo: clRepo,
		AuthCache:  utils.GetAuthCacheClient(),

		BookAppointmentHandler:     appointmentHandler.BookHandler,
		GetAppointmentHandler:      appointmentHandler.GetHandler,
		UpdateAppointmentHandler:   appointmentHandler.UpdateHandler,
		ConfirmAppointmentHandler:  appointmentHandler.ConfirmHandler,
		CancelAppointmentHandler:   appointmentHandler.CancelHandler,
		CompleteAppointmentHandler: appointmentHandler.CompleteHandler,
		NoShowAppointmentHandler:   appointmentHandler.NoShowHandler,
		ListClientAppointments:     appointmentHandler.ListForClientHandler,
		ListStaffDayAppointments:   appointmentHandler.ListForStaffDayHandler,

		GetSlotsHandler: availabilityHandler.GetSlotsHandler,

		GetWeekScheduleHandler: scheduleHandler.GetWeekHandler,
		UpsertWorkingDay:       scheduleHandler.UpsertDayHandler,

		RequestVacationHandler:  vacationHandler.RequestHandler,
		ApproveVacationHandler:  vacationHandler.ApproveHandler,
		RejectVacationHandler:   vacationHandler.RejectHandler,
		WithdrawVacationHandler: vacationHandler.WithdrawHandler,
		ListVacationsHandler:    vacationHandler.ListHandler,

		ProvisionStaffHandler:  staffHandler.ProvisionHandler,
		StaffLoginHandler:      staffHandler.LoginHandler,
		GetStaffHandler:        staffHandler.GetHandler,
		ListStaffHandler:       staffHandler.ListHandler,
		UpdateStaffHandler:     staffHandler.UpdateProfileHandler,
		DeactivateStaffHandler: staffHandler.DeactivateHandler,

		RegisterClientHandler:      clientHandler.RegisterHandler,
		ClientLoginHandler:         clientHandler.LoginHandler,
		ClientMeHandler:            clientHandler.MeHandler,
		UpdateClientProfileHandler: clientHandler.UpdateProfileHandler,

		CreateServiceHandler:      catalogueHandler.CreateHandler,
		GetServiceHandler:         catalogueHandler.GetHandler,
		UpdateServiceHandler:      catalogueHandler.UpdateHandler,
		RetireServiceHandler:      catalogueHandler.RetireHandler,
		ListActiveServicesHandler: catalogueHandler.ListActiveHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService, apptRepo)
	queueRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueRedis.Close()
	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
			"lock":  utils.GetLockClient(),
			"queue": queueRedis,
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
