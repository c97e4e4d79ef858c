// Package config provides shared configuration utilities.
package config

import (
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by the key.
// Unset or unparsable values yield fallback; ok reports whether the value was usable.
func GetEnvInt(key string, fallback int) (value int, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set {
		return fallback, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback, false
	}
	return n, true
}

// GetEnvFloat is the float64 counterpart of GetEnvInt.
func GetEnvFloat(key string, fallback float64) (value float64, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set {
		return fallback, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fallback, false
	}
	return f, true
}

// GetEnvBool accepts the forms understood by strconv.ParseBool plus on/off and yes/no.
func GetEnvBool(key string, fallback bool) (value bool, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set {
		return fallback, true
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return true, true
	case "off", "no":
		return false, true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback, false
	}
	return b, true
}
