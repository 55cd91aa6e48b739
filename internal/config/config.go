package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`    // Total time spent retrying the initial connection
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	CORSOrigins  []string `mapstructure:"cors_origins"`
	RateLimit    float64  `mapstructure:"rate_limit"` // requests per second per client, 0 disables
	RateBurst    int      `mapstructure:"rate_burst"`
}

// AuthConfig holds authentication configuration for the admin routes
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RedisConfig holds the session cache configuration. An empty address disables the cache.
type RedisConfig struct {
	Address     string        `mapstructure:"address"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	MaxIdle     int           `mapstructure:"max_idle"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
}

// FixturesConfig holds reference data fixture configuration
type FixturesConfig struct {
	Dir         string `mapstructure:"dir"`
	LoadOnStart bool   `mapstructure:"load_on_start"`
	Workers     int    `mapstructure:"workers"`
}

// CatalogConfig holds the in-memory property catalog configuration
type CatalogConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Redis      RedisConfig    `mapstructure:"redis"`
	Fixtures   FixturesConfig `mapstructure:"fixtures"`
	Catalog    CatalogConfig  `mapstructure:"catalog"`
}

// InitDBConfig holds configuration for init-db
type InitDBConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Fixtures   FixturesConfig `mapstructure:"fixtures"`
	SchemaPath string         `mapstructure:"schema_path"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 20)
	setDatabaseDefaults(v)
	setFixturesDefaults(v)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.max_idle", 3)
	v.SetDefault("redis.idle_timeout", "4m")
	v.SetDefault("redis.session_ttl", "24h")
	v.SetDefault("catalog.cache_size", 256)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadInitDBConfig loads configuration for init-db
func LoadInitDBConfig(configFile string, envPath string) (*InitDBConfig, error) {
	v := configureViper("init-db", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setFixturesDefaults(v)
	v.SetDefault("fixtures.load_on_start", true)
	v.SetDefault("schema_path", "db/init_pg_db.sql")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg InitDBConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("database.connect_timeout", "1m")
}

func setFixturesDefaults(v *viper.Viper) {
	v.SetDefault("fixtures.dir", "data/")
	v.SetDefault("fixtures.load_on_start", false)
	v.SetDefault("fixtures.workers", 4)
}

// readConfig reads the config file; a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		// An explicitly named file that does not exist surfaces as a path error
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/init-db/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MONOPOLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)

	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.connect_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		"server.rate_limit",
		"server.rate_burst",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Redis
		"redis.address",
		"redis.password",
		"redis.db",
		"redis.max_idle",
		"redis.idle_timeout",
		"redis.session_ttl",
		// Fixtures
		"fixtures.dir",
		"fixtures.load_on_start",
		"fixtures.workers",
		// Catalog
		"catalog.cache_size",
		// init-db
		"schema_path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Timeouts returns the server timeouts as durations
func (c *ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(c.ReadTimeout) * time.Second,
		time.Duration(c.WriteTimeout) * time.Second,
		time.Duration(c.IdleTimeout) * time.Second
}
