package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/app/delivery/http/controllers"
	"superadmin-service/internal/app/delivery/http/middlewares"
	"superadmin-service/internal/app/delivery/http/routers"
	"superadmin-service/internal/app/drivers/database"
	"superadmin-service/internal/app/drivers/logger"
	"superadmin-service/internal/app/drivers/messaging"
	"superadmin-service/internal/app/drivers/storage"
	"superadmin-service/internal/app/services/core/auth"
	"superadmin-service/internal/app/services/core/bookings"
	"superadmin-service/internal/app/services/core/catalog"
	"superadmin-service/internal/app/services/core/cms"
	"superadmin-service/internal/app/services/core/dashboard"
	"superadmin-service/internal/app/services/core/members"
	"superadmin-service/internal/app/services/core/organization"
	organizationWizard "superadmin-service/internal/app/services/core/organization_wizard"
	"superadmin-service/internal/app/services/shared/audit"
	"superadmin-service/internal/app/services/shared/locker"
	"superadmin-service/internal/app/services/shared/redis"
	sharedStorage "superadmin-service/internal/app/services/shared/storage"
	"superadmin-service/internal/app/services/superadmin_api"
	"superadmin-service/internal/pkg/utils"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting superadmin service",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), time.Minute)
	defer cancelBoot()

	redisClient, err := database.NewRedisClient(bootCtx, driverConfig, log)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	rabbitMQ, err := messaging.NewRabbitMQ(bootCtx, driverConfig, log)
	if err != nil {
		log.Fatal("Failed to connect to rabbitMQ", zap.Error(err))
	}
	minioClient, err := storage.NewMinio(driverConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize minio", zap.Error(err))
	}

	bucketCtx, cancelBucket := context.WithTimeout(bootCtx, 10*time.Second)
	err = storage.EnsureBucket(bucketCtx, minioClient, internalConfig.Minio.BucketName)
	cancelBucket()
	if err != nil {
		log.Fatal("Failed to prepare logo bucket",
			zap.String("bucket_name", internalConfig.Minio.BucketName),
			zap.Error(err),
		)
	}

	chiRouter := chi.NewRouter()
	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	auditPublisher, err := audit.NewPublisher(bootstrap.RabbitMQ, log, internalConfig.RabbitMQ.AuditQueue)
	if err != nil {
		return fmt.Errorf("audit publisher: %w", err)
	}
	sealer, err := utils.NewSealer(internalConfig.Wizard.SealingSecret)
	if err != nil {
		return fmt.Errorf("wizard sealer: %w", err)
	}

	// Superadmin API
	superadminClient := superadmin_api.NewClient(internalConfig.Superadmin, log)

	// Middlewares
	tokenVerifier, err := utils.NewTokenVerifier(internalConfig.Superadmin.TokenAlgorithm, internalConfig.Superadmin.TokenVerificationKey)
	if err != nil {
		return fmt.Errorf("token verifier: %w", err)
	}
	middlewares := middlewares.NewMiddlewares(log, internalConfig, tokenVerifier)

	// Auth
	authUsecase := auth.NewAuthUsecase(superadminClient, log)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(superadminClient, log)

	// Organization
	organizationUsecase := organization.NewOrganizationUsecase(superadminClient, minioStorage, auditPublisher, internalConfig, log)
	organizationWizardUsecase := organizationWizard.NewOrganizationWizardUsecase(
		redisRepository,
		lockService,
		sealer,
		superadminClient,
		auditPublisher,
		internalConfig,
		log,
	)

	// Users and doctors
	memberUsecase := members.NewMemberUsecase(superadminClient, auditPublisher, log)

	// Bookings
	bookingUsecase := bookings.NewBookingUsecase(superadminClient, auditPublisher, log)

	// CMS
	cmsUsecase := cms.NewCMSUsecase(superadminClient, auditPublisher, log)

	// Service packages and services
	catalogUsecase := catalog.NewCatalogUsecase(superadminClient, auditPublisher, log)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, routers.Controllers{
		Auth:               controllers.NewAuthController(log, authUsecase),
		Dashboard:          controllers.NewDashboardController(log, dashboardUsecase),
		Organization:       controllers.NewOrganizationController(log, organizationUsecase),
		OrganizationWizard: controllers.NewOrganizationWizardController(log, organizationWizardUsecase),
		Member:             controllers.NewMemberController(log, memberUsecase),
		Booking:            controllers.NewBookingController(log, bookingUsecase),
		CMS:                controllers.NewCMSController(log, cmsUsecase),
		Catalog:            controllers.NewCatalogController(log, catalogUsecase),
	})
	return nil
}
