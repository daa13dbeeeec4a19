package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envTypes interface {
	~string | ~int | ~bool | time.Duration
}

// GetEnv reads an environment variable, falling back to defaultValue when
// it is unset or empty. The value is parsed according to the type argument.
func GetEnv[T envTypes](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatal(err)
	}
	return parsed
}

// GetRequiredEnv is GetEnv without a fallback: the process refuses to start
// when the variable is missing.
func GetRequiredEnv[T envTypes](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatal(err)
	}
	return parsed
}

func parseEnv[T envTypes](envVar, envValue string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(envValue).(T), nil
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s: '%s' is not an integer", envVar, envValue)
		}
		return any(intValue).(T), nil
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s: '%s' is not a boolean", envVar, envValue)
		}
		return any(boolValue).(T), nil
	case time.Duration:
		durationValue, err := time.ParseDuration(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s: '%s' is not a duration", envVar, envValue)
		}
		return any(durationValue).(T), nil
	default:
		return zero, fmt.Errorf("environment variable %s: unsupported type", envVar)
	}
}
