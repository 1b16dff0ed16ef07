package config

import (
	"superadmin-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
			PoolSize: utils.GetEnvInt("REDIS_POOL_SIZE", 10),

			DialTimeoutInSeconds: utils.GetEnvInt("REDIS_DIAL_TIMEOUT_IN_SECONDS", 5),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", "/"),

			ConnectionName: utils.GetEnvString("RABBITMQ_CONNECTION_NAME", "superadmin-service"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		ConnectAttempts:         utils.GetEnvInt("DRIVER_CONNECT_ATTEMPTS", 5),
		ConnectBackoffInSeconds: utils.GetEnvInt("DRIVER_CONNECT_BACKOFF_IN_SECONDS", 2),
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "http://localhost:3001"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Superadmin: AppSuperadmin{
			BaseUrl:                 utils.GetEnvString("APP_SUPERADMIN_API_BASE_URL", "http://localhost:3000/api/v1"),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_SUPERADMIN_API_TIMEOUT_IN_SECONDS", 15),
			RequestsPerSecond:       utils.GetEnvFloat("APP_SUPERADMIN_API_REQUESTS_PER_SECOND", 20),
			Burst:                   utils.GetEnvInt("APP_SUPERADMIN_API_BURST", 40),
			TokenAlgorithm:          utils.GetEnvString("APP_SUPERADMIN_API_TOKEN_ALGORITHM", "HS256"),
			TokenVerificationKey:    utils.GetEnvString("APP_SUPERADMIN_API_TOKEN_VERIFICATION_KEY", ""),
		},
		Wizard: AppWizard{
			SessionExpiredTimeInMinutes:   utils.GetEnvInt("APP_WIZARD_SESSION_EXPIRED_TIME_IN_MINUTES", 60),
			SubmittedExpiredTimeInMinutes: utils.GetEnvInt("APP_WIZARD_SUBMITTED_EXPIRED_TIME_IN_MINUTES", 5),
			LockExpiredTimeInSeconds:      utils.GetEnvInt("APP_WIZARD_LOCK_EXPIRED_TIME_IN_SECONDS", 30),
			SealingSecret:                 utils.GetEnvString("APP_WIZARD_SEALING_SECRET", "change-me-wizard-sealing-secret"),
		},
		Minio: AppMinio{
			BucketName:                    utils.GetEnvString("APP_MINIO_LOGO_BUCKET_NAME", "organization-logos"),
			LogoMaxUploadSizeInMB:         utils.GetEnvInt64("APP_LOGO_MAX_UPLOAD_SIZE_IN_MB", 2),
			PreSignedUrlExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 168),
		},
		RabbitMQ: AppRabbitMQ{
			AuditQueue: utils.GetEnvString("APP_RABBITMQ_AUDIT_QUEUE", "superadmin_audit"),
		},
	}
}
