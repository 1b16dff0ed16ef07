package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"superadmin-service/internal/pkg/constvars"
)

// lookupEnv returns fallback when key is unset, blank or fails to parse.
// Parse failures are reported on the standard logger since the zap logger
// is built from this configuration.
func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		log.Printf(constvars.ErrEnvParsing, key, err)
		return fallback
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	return lookupEnv(key, defaultValue, func(raw string) (int64, error) {
		return strconv.ParseInt(raw, 10, 64)
	})
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue, func(raw string) (float64, error) {
		return strconv.ParseFloat(raw, 64)
	})
}
