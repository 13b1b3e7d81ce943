package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Name != "ticket-analytics" {
		t.Errorf("app name = %q", cfg.App.Name)
	}
	if cfg.Import.ChunkSize != 500 {
		t.Errorf("chunk size = %d, want 500", cfg.Import.ChunkSize)
	}
	if cfg.Import.MaxUploadBytes != 20<<20 {
		t.Errorf("max upload = %d, want 20MiB", cfg.Import.MaxUploadBytes)
	}
	if cfg.Cache.TTL() != 5*time.Minute {
		t.Errorf("cache ttl = %v, want 5m", cfg.Cache.TTL())
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Errorf("request timeout = %v, want 30s", cfg.App.RequestTimeout())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("IMPORT_CHUNK_SIZE", "100")
	t.Setenv("IMPORT_DELIMITERS", ";|")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Import.ChunkSize != 100 {
		t.Errorf("chunk size = %d, want 100", cfg.Import.ChunkSize)
	}
	if got := cfg.Import.DelimiterRunes(); len(got) != 2 || got[0] != ';' || got[1] != '|' {
		t.Errorf("delimiters = %q", string(got))
	}
	if cfg.Cache.TTL() != time.Minute {
		t.Errorf("cache ttl = %v, want 1m", cfg.Cache.TTL())
	}
	if cfg.App.Addr() != "0.0.0.0:9090" {
		t.Errorf("addr = %q", cfg.App.Addr())
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("IMPORT_CHUNK_SIZE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Import.ChunkSize != 500 {
		t.Errorf("chunk size = %d, want default 500", cfg.Import.ChunkSize)
	}
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "nope")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}
