// Package env reads the deployment identity injected by the pod spec.
package env

import (
	"os"
)

// PodName example: salesbot-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: prod, falls back to "local"
func EnvName() string {
	return lookup("ENV_NAME", "local")
}

// AppName example: salesbot
func AppName() string {
	return lookup("APP_NAME", "salesbot")
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
