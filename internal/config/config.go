package config

import (
	"os"
	"strings"
)

// Get returns the environment variable value or a fallback default.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Bool reads a boolean-ish environment variable ("true"/"1" are true).
func Bool(key string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1"
}
