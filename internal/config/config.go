package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	Host string
	Port string
	Env  string

	Store StoreConfig

	CheckTimeout time.Duration
	CORSOrigins  []string
}

type StoreConfig struct {
	Backend     string
	DatabaseURL string
	PoolSize    int
	Mongo       MongoConfig
}

type MongoConfig struct {
	URL      string
	User     string
	Pass     string
	Host     string
	Database string
}

// URI returns MONGO_URL when set, otherwise builds one from the credential parts.
func (m MongoConfig) URI() string {
	if m.URL != "" {
		return m.URL
	}
	if m.User == "" {
		return fmt.Sprintf("mongodb://%s", m.Host)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s", m.User, m.Pass, m.Host)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	checkTimeout, err := time.ParseDuration(getEnv("CHECK_TIMEOUT", "10s"))
	if err != nil {
		checkTimeout = 10 * time.Second
	}

	poolSize, err := strconv.Atoi(getEnv("STORE_POOL_SIZE", "10"))
	if err != nil || poolSize <= 0 {
		poolSize = 10
	}

	cfg := &Config{
		Host: getEnv("HOST", "localhost"),
		Port: getEnv("PORT", "8000"),
		Env:  getEnv("ENV", "development"),

		Store: StoreConfig{
			Backend:     strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			PoolSize:    poolSize,
			Mongo: MongoConfig{
				URL:      getEnv("MONGO_URL", ""),
				User:     getEnv("MONGO_USER", ""),
				Pass:     getEnv("MONGO_PASS", ""),
				Host:     getEnv("MONGO_HOST", "localhost:27017"),
				Database: getEnv("MONGO_DATABASE", "webcollage"),
			},
		},

		CheckTimeout: checkTimeout,
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendMongo:
		return nil
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for store backend %q", BackendPostgres)
		}
		return nil
	default:
		return fmt.Errorf("unknown store backend: %q (supported: %s, %s, %s)",
			c.Store.Backend, BackendMemory, BackendPostgres, BackendMongo)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
