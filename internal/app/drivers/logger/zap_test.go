package logger

import (
	"superadmin-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		"info":    zap.InfoLevel,
		"warn":    zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"verbose": zap.InfoLevel,
		"":        zap.InfoLevel,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, parseLevel(input), input)
	}
}

func TestBuildZapConfig(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{
		Level:               "warn",
		OutputFileName:      "app.log",
		OutputErrorFileName: "app_error.log",
	}}

	t.Run("development writes to the console", func(t *testing.T) {
		cfg := buildZapConfig(driverConfig, &config.InternalConfig{App: config.App{Env: "development"}})
		assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
		assert.True(t, cfg.Development)
		assert.Equal(t, zap.WarnLevel, cfg.Level.Level())
	})

	t.Run("production also writes to files", func(t *testing.T) {
		cfg := buildZapConfig(driverConfig, &config.InternalConfig{App: config.App{Env: "production"}})
		assert.Equal(t, []string{"stdout", "app.log"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr", "app_error.log"}, cfg.ErrorOutputPaths)
		assert.False(t, cfg.Development)
		assert.Equal(t, "json", cfg.Encoding)
	})
}
