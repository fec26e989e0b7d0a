package config

import (
	"os"
	"strings"
)

// Config carries every environment-provided setting. It is constructed once
// in main and passed by reference; packages must not reach for os.Getenv
// themselves.
type Config struct {
	AppHeading    string
	AdminUsername string
	AdminPassword string
	SecurityToken string

	LoggingEnabled bool
	LogFile        string

	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
}

func Load() *Config {
	return &Config{
		AppHeading:    getEnv("APP_HEADING", "Student Registration System"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		SecurityToken: getEnv("SECURITY_TOKEN", "mytoken"),

		LoggingEnabled: strings.EqualFold(getEnv("LOGGING", "false"), "true"),
		LogFile:        getEnv("LOG_FILE", "student_actions.log"),

		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_DATABASE", "students_db"),
		DBPath:     getEnv("DB_PATH", "students.db"),
	}
}

func (c *Config) ListenAddress() string {
	return ":" + c.HTTPPort
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
