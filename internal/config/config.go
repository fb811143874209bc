// Package config loads server configuration from the environment.
package config

import "os"

type Config struct {
	Port        string
	Env         string
	LogLevel    string
	DatasetPath string // optional JSON dataset; empty means built-in
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatasetPath: getEnv("DATASET_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
