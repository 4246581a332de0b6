package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	for _, key := range []string{"STORE_DRIVER", "SIM_FIXTURE_CAP", "SIM_TICK_INTERVAL", "SIM_SEED", "REDIS_ENABLED", "REDIS_STREAM", "UPTRACE_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("expected memory store by default, got %q", cfg.StoreDriver)
	}
	if cfg.SimFixtureCap != 36 || cfg.SimTickInterval != time.Second || cfg.SimSeed != 0 {
		t.Fatalf("unexpected simulation defaults: cap=%d tick=%s seed=%d", cfg.SimFixtureCap, cfg.SimTickInterval, cfg.SimSeed)
	}
	if cfg.SimRewardChampion != 1500 || cfg.SimRewardUpper != 1000 || cfg.SimRewardMid != 500 || cfg.SimRewardRelegation != 200 {
		t.Fatalf("unexpected reward defaults: %+v", cfg)
	}
	if cfg.RedisEnabled || cfg.RedisStream != "football-sim.matches" {
		t.Fatalf("unexpected redis defaults: enabled=%v stream=%q", cfg.RedisEnabled, cfg.RedisStream)
	}
	if cfg.ServiceName != "football-sim-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
}

func TestLoad_StoreDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORE_DRIVER")
		}
	})

	t.Run("postgres", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", " Postgres ")
		t.Setenv("DB_URL", "postgres://sim:sim@db:5432/sim")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StorePostgres || cfg.DBURL != "postgres://sim:sim@db:5432/sim" {
			t.Fatalf("unexpected store config: %q %q", cfg.StoreDriver, cfg.DBURL)
		}
	})
}

func TestLoad_SimulationParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SIM_SEED", "42")
	t.Setenv("SIM_FIXTURE_CAP", "10")
	t.Setenv("SIM_REWARD_CHAMPION", "3000")
	t.Setenv("SIM_TICK_INTERVAL", "250ms")
	t.Setenv("SIM_PROJECTION_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SimSeed != 42 || cfg.SimFixtureCap != 10 || cfg.SimRewardChampion != 3000 {
		t.Fatalf("unexpected simulation config: %+v", cfg)
	}
	if cfg.SimTickInterval != 250*time.Millisecond || cfg.SimProjectionWorkers != 8 {
		t.Fatalf("unexpected tick/workers: %s %d", cfg.SimTickInterval, cfg.SimProjectionWorkers)
	}
}

func TestLoad_SimulationValidation(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "SIM_SEED", value: "-1"},
		{key: "SIM_FIXTURE_CAP", value: "0"},
		{key: "SIM_REWARD_MID", value: "-5"},
		{key: "SIM_REWARD_UPPER", value: "lots"},
		{key: "SIM_TICK_INTERVAL", value: "0s"},
		{key: "SIM_PROJECTION_WORKERS", value: "0"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_RedisConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_STREAM", "sim.events")
	t.Setenv("REDIS_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("REDIS_CIRCUIT_OPEN_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.RedisEnabled || cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 || cfg.RedisStream != "sim.events" {
		t.Fatalf("unexpected redis config: %+v", cfg)
	}
	if cfg.RedisCircuitFailureCount != 3 || cfg.RedisCircuitOpenTimeout != 5*time.Second || cfg.RedisCircuitHalfOpenMaxReq != 2 {
		t.Fatalf("unexpected redis circuit config: %+v", cfg)
	}

	t.Setenv("REDIS_CIRCUIT_HALF_OPEN_MAX_REQ", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for REDIS_CIRCUIT_HALF_OPEN_MAX_REQ=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "football-sim-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-sim-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("csv parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
			t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for empty CORS origins")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheEnabled || cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected cache config: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}

	t.Setenv("CACHE_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for CACHE_TTL=0s")
	}
}

func TestLoad_LogLevel(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "WARNING")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}
