package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"MEDIA_DIR",
		"MEDIA_BASE_URL",
		"AUTH_SECRET",
		"AUTH_ISSUER",
		"DEFAULT_LANGUAGE",
		"ALLOWED_ORIGINS",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}
	// AUTH_SECRET has no default
	os.Setenv("AUTH_SECRET", "test-secret")

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBUser != "postgres" {
			t.Errorf("DBUser = %v, want postgres", cfg.DBUser)
		}
		if cfg.DBName != "cms_admin" {
			t.Errorf("DBName = %v, want cms_admin", cfg.DBName)
		}
		if cfg.DBSSLMode != "disable" {
			t.Errorf("DBSSLMode = %v, want disable", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.DBMinConns != 5 {
			t.Errorf("DBMinConns = %v, want 5", cfg.DBMinConns)
		}
		if cfg.MediaDir != "./media" {
			t.Errorf("MediaDir = %v, want ./media", cfg.MediaDir)
		}
		if cfg.MediaBaseURL != "http://localhost:8080/media" {
			t.Errorf("MediaBaseURL = %v, want http://localhost:8080/media", cfg.MediaBaseURL)
		}
		if cfg.DefaultLanguage != "en" {
			t.Errorf("DefaultLanguage = %v, want en", cfg.DefaultLanguage)
		}
		if cfg.AllowedOrigins != "*" {
			t.Errorf("AllowedOrigins = %v, want *", cfg.AllowedOrigins)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "testuser")
		os.Setenv("DB_PASSWORD", "testpass")
		os.Setenv("DB_NAME", "testdb")
		os.Setenv("DB_SSL_MODE", "require")
		os.Setenv("DB_MAX_CONNS", "50")
		os.Setenv("DB_MIN_CONNS", "10")
		os.Setenv("MEDIA_DIR", "/var/media")
		os.Setenv("MEDIA_BASE_URL", "https://cdn.example.com/media")
		os.Setenv("AUTH_ISSUER", "cms-admin")
		os.Setenv("DEFAULT_LANGUAGE", "id")
		os.Setenv("ALLOWED_ORIGINS", "https://admin.example.com")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBUser != "testuser" {
			t.Errorf("DBUser = %v, want testuser", cfg.DBUser)
		}
		if cfg.DBPassword != "testpass" {
			t.Errorf("DBPassword = %v, want testpass", cfg.DBPassword)
		}
		if cfg.DBName != "testdb" {
			t.Errorf("DBName = %v, want testdb", cfg.DBName)
		}
		if cfg.DBSSLMode != "require" {
			t.Errorf("DBSSLMode = %v, want require", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 50 {
			t.Errorf("DBMaxConns = %v, want 50", cfg.DBMaxConns)
		}
		if cfg.DBMinConns != 10 {
			t.Errorf("DBMinConns = %v, want 10", cfg.DBMinConns)
		}
		if cfg.MediaDir != "/var/media" {
			t.Errorf("MediaDir = %v, want /var/media", cfg.MediaDir)
		}
		if cfg.MediaBaseURL != "https://cdn.example.com/media" {
			t.Errorf("MediaBaseURL = %v, want https://cdn.example.com/media", cfg.MediaBaseURL)
		}
		if cfg.AuthIssuer != "cms-admin" {
			t.Errorf("AuthIssuer = %v, want cms-admin", cfg.AuthIssuer)
		}
		if cfg.DefaultLanguage != "id" {
			t.Errorf("DefaultLanguage = %v, want id", cfg.DefaultLanguage)
		}
		if cfg.AllowedOrigins != "https://admin.example.com" {
			t.Errorf("AllowedOrigins = %v, want https://admin.example.com", cfg.AllowedOrigins)
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("AUTH_SECRET", "test-secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
	})

	t.Run("missing auth secret fails", func(t *testing.T) {
		os.Unsetenv("AUTH_SECRET")
		defer os.Setenv("AUTH_SECRET", "test-secret")

		if _, err := Load(); err == nil {
			t.Error("Load() should fail without AUTH_SECRET")
		}
	})

	t.Run("unknown default language fails", func(t *testing.T) {
		os.Setenv("DEFAULT_LANGUAGE", "fr")
		defer os.Unsetenv("DEFAULT_LANGUAGE")

		if _, err := Load(); err == nil {
			t.Error("Load() should fail for unsupported DEFAULT_LANGUAGE")
		}
	})
}
