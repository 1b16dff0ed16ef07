package config

type (
	// DriverConfig holds the connection settings of every backing service.
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio

		// ConnectAttempts bounds the dial/ping retries made at boot.
		ConnectAttempts         int
		ConnectBackoffInSeconds int
	}
	Redis struct {
		Host                 string
		Port                 string
		Password             string
		DB                   int
		PoolSize             int
		DialTimeoutInSeconds int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Host           string
		Port           string
		Username       string
		Password       string
		VHost          string
		ConnectionName string
	}
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
)
