package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends understood by STORAGE_BACKEND
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port            int           `json:"port"`
	Environment     string        `json:"environment"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Storage configuration
	StorageBackend string `json:"storage_backend"`
	SeedDemoData   bool   `json:"seed_demo_data"`

	// MongoDB configuration
	MongoURI          string `json:"mongo_uri"`
	MongoDatabase     string `json:"mongo_database"`
	MongoKVCollection string `json:"mongo_kv_collection"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`
	RedisPoolSize int    `json:"redis_pool_size"`

	// Postal code lookup configuration
	ViaCEPBaseURL string        `json:"viacep_base_url"`
	ViaCEPTimeout time.Duration `json:"viacep_timeout"`
	CEPCacheTTL   time.Duration `json:"cep_cache_ttl"`

	// Geolocation configuration
	GeolocationTimeout time.Duration `json:"geolocation_timeout"`
	GeolocationMaxAge  time.Duration `json:"geolocation_max_age"`
	MapsBaseURL        string        `json:"maps_base_url"`

	// CORS configuration
	AllowedOrigins []string `json:"allowed_origins"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	storageBackend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", StorageMemory))
	switch storageBackend {
	case StorageMemory, StorageRedis, StorageMongo:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: expected memory, redis or mongo", storageBackend)
	}

	viaCEPTimeout, err := time.ParseDuration(getEnvOrDefault("VIACEP_TIMEOUT", "5s"))
	if err != nil {
		return fmt.Errorf("invalid VIACEP_TIMEOUT: %w", err)
	}

	cepCacheTTL, err := time.ParseDuration(getEnvOrDefault("CEP_CACHE_TTL", "24h"))
	if err != nil {
		return fmt.Errorf("invalid CEP_CACHE_TTL: %w", err)
	}

	geolocationTimeout, err := time.ParseDuration(getEnvOrDefault("GEOLOCATION_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("invalid GEOLOCATION_TIMEOUT: %w", err)
	}

	geolocationMaxAge, err := time.ParseDuration(getEnvOrDefault("GEOLOCATION_MAX_AGE", "60s"))
	if err != nil {
		return fmt.Errorf("invalid GEOLOCATION_MAX_AGE: %w", err)
	}

	seedDemoData, err := strconv.ParseBool(getEnvOrDefault("SEED_DEMO_DATA", "true"))
	if err != nil {
		return fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:            port,
		Environment:     getEnvOrDefault("ENVIRONMENT", "development"),
		ShutdownTimeout: getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Storage configuration
		StorageBackend: storageBackend,
		SeedDemoData:   seedDemoData,

		// MongoDB configuration
		MongoURI:          getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnvOrDefault("MONGODB_DATABASE", "ecopontos"),
		MongoKVCollection: getEnvOrDefault("MONGODB_KV_COLLECTION", "kv_store"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisPoolSize: getEnvAsIntOrDefault("REDIS_POOL_SIZE", 10),

		// Postal code lookup configuration
		ViaCEPBaseURL: strings.TrimRight(getEnvOrDefault("VIACEP_BASE_URL", "https://viacep.com.br/ws"), "/"),
		ViaCEPTimeout: viaCEPTimeout,
		CEPCacheTTL:   cepCacheTTL,

		// Geolocation configuration
		GeolocationTimeout: geolocationTimeout,
		GeolocationMaxAge:  geolocationMaxAge,
		MapsBaseURL:        getEnvOrDefault("MAPS_BASE_URL", "https://www.google.com/maps"),

		// CORS configuration
		AllowedOrigins: parseCommaSeparatedList(getEnvOrDefault("ALLOWED_ORIGINS", "*")),

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the integer value of an environment variable,
// or the default when unset or unparseable
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDurationOrDefault returns the duration value of an environment variable,
// or the default when unset or unparseable
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// parseCommaSeparatedList splits a comma separated value, dropping empty items
func parseCommaSeparatedList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
