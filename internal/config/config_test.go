package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("BLOB_DRIVER", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "5000" || cfg.Store.Driver != "memory" || cfg.Blob.Driver != "memory" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour || cfg.Log.Level != slog.LevelInfo {
		t.Fatalf("auth/log defaults = %+v %+v", cfg.Auth, cfg.Log)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "7")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("BLOB_DRIVER", "gcs")
	t.Setenv("GCS_BUCKET", "images")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Server.ReadTimeout != 3*time.Second || cfg.Postgres.MaxOpenConns != 7 {
		t.Fatalf("server/pg = %+v %+v", cfg.Server, cfg.Postgres)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Fatalf("level = %v", cfg.Log.Level)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("invalid duration should fall back, got %v", cfg.Auth.TokenTTL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"store driver", map[string]string{"STORE_DRIVER": "sqlite"}, "STORE_DRIVER"},
		{"gcs without bucket", map[string]string{"BLOB_DRIVER": "gcs", "GCS_BUCKET": ""}, "GCS_BUCKET"},
		{"mongo blobs on memory", map[string]string{"STORE_DRIVER": "memory", "BLOB_DRIVER": "mongo"}, "BLOB_DRIVER=mongo"},
		{"exporter", map[string]string{"OTEL_TRACES_EXPORTER": "zipkin"}, "OTEL_TRACES_EXPORTER"},
		{"log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}
