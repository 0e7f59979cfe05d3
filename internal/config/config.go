package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// homoglyph data, generator and shortener behaviour, background workers
// and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of JSON request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// PublicBaseURL is used to build shortened URLs, e.g. https://sho.rt
		PublicBaseURL string `env:"HTTP_PUBLIC_BASE_URL" env-default:"http://localhost:8080" yaml:"publicBaseUrl"`
		// AllowedOrigin is sent as Access-Control-Allow-Origin
		AllowedOrigin string `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
		// EnablePprof mounts the /debug/pprof/ endpoints
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"homoglyph" yaml:"name"`
		// ConnectTimeout bounds dialing and the startup ping
		ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" env-default:"5s" yaml:"connectTimeout"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT configures bearer token verification
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// Issuer, when set, must match the token's iss claim
		Issuer string `env:"JWT_ISSUER" env-default:"homoglyph" yaml:"issuer"`
	} `yaml:"jwt"`

	// Table locates the homoglyph data sources
	Table struct {
		// Dir switches from the embedded data to an on-disk directory
		Dir string `env:"TABLE_DIR" env-default:"" yaml:"dir"`
		// MapPath is the pre-compiled JSON map, relative to the data root
		MapPath string `env:"TABLE_MAP_PATH" env-default:"data/homoglyph_map.json" yaml:"mapPath"`
		// CodesPath is the plain text code point list, relative to the data root
		CodesPath string `env:"TABLE_CODES_PATH" env-default:"data/char_codes.txt" yaml:"codesPath"`
	} `yaml:"table"`

	// Generator configures variant generation
	Generator struct {
		// DefaultMaxResults is used when a request does not ask for a count
		DefaultMaxResults int `env:"GENERATOR_DEFAULT_MAX_RESULTS" env-default:"20" yaml:"defaultMaxResults"`
		// MaxResultsLimit caps the count a request may ask for
		MaxResultsLimit int `env:"GENERATOR_MAX_RESULTS_LIMIT" env-default:"200" yaml:"maxResultsLimit"`
		// AttemptFactor multiplied by the requested count caps random draws
		AttemptFactor int `env:"GENERATOR_ATTEMPT_FACTOR" env-default:"50" yaml:"attemptFactor"`
	} `yaml:"generator"`

	// Shortener configures the URL shortener
	Shortener struct {
		// Enabled turns on the shortener routes and requires a database
		Enabled bool `env:"SHORTENER_ENABLED" env-default:"false" yaml:"enabled"`
		// CodeLength is the number of characters of generated codes
		CodeLength int `env:"SHORTENER_CODE_LENGTH" env-default:"6" yaml:"codeLength"`
		// MaxAttempts bounds retries when a generated code is already taken
		MaxAttempts int `env:"SHORTENER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// MaxTTL caps the lifetime a caller may request; zero means unlimited
		MaxTTL time.Duration `env:"SHORTENER_MAX_TTL" env-default:"720h" yaml:"maxTtl"`
	} `yaml:"shortener"`

	// Worker configures background job processing
	Worker struct {
		// Concurrency is the number of expiry jobs processed at once
		Concurrency int `env:"WORKER_CONCURRENCY" env-default:"10" yaml:"concurrency"`
		// MaxAttempts is the number of times a failed expiry job is retried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
