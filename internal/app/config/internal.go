package config

type InternalConfig struct {
	App        App           `mapstructure:"app"`
	Superadmin AppSuperadmin `mapstructure:"superadmin"`
	Wizard     AppWizard     `mapstructure:"wizard"`
	Minio      AppMinio      `mapstructure:"minio"`
	RabbitMQ   AppRabbitMQ   `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppSuperadmin configures the client of the external superadmin API.
type AppSuperadmin struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	RequestsPerSecond       float64 `mapstructure:"requests_per_second"`
	Burst                   int     `mapstructure:"burst"`
	// TokenAlgorithm and TokenVerificationKey verify the bearer tokens the
	// API issues. The key is a shared secret for HS* and a PEM public key
	// for RS256 and ES256.
	TokenAlgorithm       string `mapstructure:"token_algorithm"`
	TokenVerificationKey string `mapstructure:"token_verification_key"`
}

type AppWizard struct {
	SessionExpiredTimeInMinutes   int    `mapstructure:"session_expired_time_in_minutes"`
	SubmittedExpiredTimeInMinutes int    `mapstructure:"submitted_expired_time_in_minutes"`
	LockExpiredTimeInSeconds      int    `mapstructure:"lock_expired_time_in_seconds"`
	SealingSecret                 string `mapstructure:"sealing_secret"`
}

type AppMinio struct {
	BucketName                    string `mapstructure:"bucket_name"`
	LogoMaxUploadSizeInMB         int64  `mapstructure:"logo_max_upload_size_in_mb"`
	PreSignedUrlExpiryTimeInHours int    `mapstructure:"pre_signed_url_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	AuditQueue string `mapstructure:"audit_queue"`
}
