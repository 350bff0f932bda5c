// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, dictionary data paths, rate limiting, and
// observability.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-kamus-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// KBBIConfig defines the dictionary lookup pipeline settings.
type KBBIConfig struct {
	DataDir         string        // directory holding the corpus shards
	CorpusGlob      string        // offline shard pattern within DataDir
	WordDBGlob      string        // word-database shard pattern within DataDir
	CacheTTL        time.Duration // result cache entry lifetime
	RateLimitMax    int           // lookups per client per window
	RateLimitWindow time.Duration // sliding window length
	SuggestionLimit int           // cap on merged suggestions per miss
	RemoteEnabled   bool          // query the remote dictionary first
	RemoteBaseURL   string        // remote API base URL
	RemoteTimeout   time.Duration // per-request remote timeout
	WatchCorpus     bool          // invalidate indices on shard file changes
}

// CorpusPattern returns the offline shard glob anchored at DataDir.
func (k KBBIConfig) CorpusPattern() string {
	return filepath.Join(k.DataDir, k.CorpusGlob)
}

// WordDBPattern returns the word-database shard glob anchored at DataDir.
func (k KBBIConfig) WordDBPattern() string {
	return filepath.Join(k.DataDir, k.WordDBGlob)
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// App
	DBPath string // SQLite path for the library catalog

	// Dictionary pipeline
	KBBI KBBIConfig

	// Edge rate limiting (token bucket in front of every route)
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api")),

		// App
		DBPath: getenv("DB_PATH", "app.db"),

		// Dictionary pipeline
		KBBI: KBBIConfig{
			DataDir:         getenv("KBBI_DATA_DIR", "data"),
			CorpusGlob:      getenv("KBBI_CORPUS_GLOB", "kbbi_v_part*.json"),
			WordDBGlob:      getenv("KBBI_WORD_DB_GLOB", "kbbi_word_data*.json"),
			CacheTTL:        getdur("KBBI_CACHE_TTL", 6*time.Hour),
			RateLimitMax:    getint("KBBI_RATE_LIMIT_MAX", 60),
			RateLimitWindow: getdur("KBBI_RATE_LIMIT_WINDOW", 60*time.Second),
			SuggestionLimit: getint("KBBI_SUGGESTION_LIMIT", 10),
			RemoteEnabled:   getbool("KBBI_REMOTE_ENABLED", false),
			RemoteBaseURL:   getenv("KBBI_REMOTE_BASE_URL", ""),
			RemoteTimeout:   getdur("KBBI_REMOTE_TIMEOUT", 5*time.Second),
			WatchCorpus:     getbool("KBBI_WATCH_CORPUS", false),
		},

		// Edge rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Idempotency
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-kamus-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	if strings.TrimSpace(cfg.KBBI.DataDir) == "" {
		return cfg, errors.New("KBBI_DATA_DIR must not be empty")
	}
	if strings.TrimSpace(cfg.KBBI.CorpusGlob) == "" || strings.TrimSpace(cfg.KBBI.WordDBGlob) == "" {
		return cfg, errors.New("KBBI shard globs must not be empty")
	}
	if cfg.KBBI.CacheTTL <= 0 {
		return cfg, errors.New("KBBI_CACHE_TTL must be > 0")
	}
	if cfg.KBBI.RateLimitMax < 1 {
		return cfg, errors.New("KBBI_RATE_LIMIT_MAX must be >= 1")
	}
	if cfg.KBBI.RateLimitWindow <= 0 {
		return cfg, errors.New("KBBI_RATE_LIMIT_WINDOW must be > 0")
	}
	if cfg.KBBI.SuggestionLimit < 1 {
		return cfg, errors.New("KBBI_SUGGESTION_LIMIT must be >= 1")
	}
	if cfg.KBBI.RemoteEnabled && strings.TrimSpace(cfg.KBBI.RemoteBaseURL) == "" {
		return cfg, errors.New("KBBI_REMOTE_BASE_URL must be set when KBBI_REMOTE_ENABLED is true")
	}
	if cfg.KBBI.RemoteTimeout <= 0 {
		return cfg, errors.New("KBBI_REMOTE_TIMEOUT must be > 0")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.IdempotencyTTL <= 0 {
		return cfg, errors.New("IDEMPOTENCY_TTL must be > 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
