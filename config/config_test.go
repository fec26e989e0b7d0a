package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AppHeading != "Student Registration System" {
		t.Fatalf("unexpected default heading: %s", cfg.AppHeading)
	}
	if cfg.AdminUsername != "admin" {
		t.Fatalf("unexpected default admin username: %s", cfg.AdminUsername)
	}
	if cfg.LoggingEnabled {
		t.Fatal("logging should default to disabled")
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("unexpected default driver: %s", cfg.DBDriver)
	}
	if cfg.ListenAddress() != ":8080" {
		t.Fatalf("unexpected listen address: %s", cfg.ListenAddress())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_HEADING", "Registrar")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("SECURITY_TOKEN", "tok-123")
	t.Setenv("LOGGING", "TRUE")
	t.Setenv("LOG_FILE", "/tmp/registrar.log")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")

	cfg := Load()

	if cfg.AppHeading != "Registrar" {
		t.Fatalf("unexpected heading: %s", cfg.AppHeading)
	}
	if cfg.AdminUsername != "root" || cfg.AdminPassword != "secret" {
		t.Fatalf("admin credentials not read: %s/%s", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.SecurityToken != "tok-123" {
		t.Fatalf("security token not read: %s", cfg.SecurityToken)
	}
	if !cfg.LoggingEnabled {
		t.Fatal("LOGGING=TRUE should enable logging")
	}
	if cfg.LogFile != "/tmp/registrar.log" {
		t.Fatalf("log file not read: %s", cfg.LogFile)
	}
	if cfg.ListenAddress() != ":9090" {
		t.Fatalf("unexpected listen address: %s", cfg.ListenAddress())
	}
	if cfg.DBDriver != "postgres" || cfg.DBHost != "db.internal" {
		t.Fatalf("db settings not read: %s/%s", cfg.DBDriver, cfg.DBHost)
	}
}
