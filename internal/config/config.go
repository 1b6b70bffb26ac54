package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strings" // strings normalizes enumeration-like values
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Database fields are only consulted when
// the MySQL storage driver is selected.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    StorageDriver string // durable state backend: "redis", "mysql" or "memory"
    KVPrefix      string // optional key prefix for the Redis backend
    DBUser        string // database username (mysql driver)
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    JWTSecret     string // secret used to verify caller identity tokens
    ConsumerOn    bool   // run the booking event consumer in-process
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The storage driver
// defaults to redis; database variables become required only when the
// mysql driver is chosen.
func Load() Config {
    cfg := Config{
        Env:           must("APP_ENV"),  // environment (dev/test/prod)
        Port:          must("APP_PORT"), // port to bind the HTTP server
        StorageDriver: strings.ToLower(getenv("STORAGE_DRIVER", "redis")),
        KVPrefix:      os.Getenv("KV_PREFIX"),
        JWTSecret:     must("JWT_SECRET"), // secret for verifying identity tokens
        ConsumerOn:    getenv("BOOKING_CONSUMER", "true") == "true",
    }
    if cfg.StorageDriver == "mysql" {
        cfg.DBUser = must("DB_USER")
        cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
        cfg.DBHost = must("DB_HOST")
        cfg.DBPort = must("DB_PORT")
        cfg.DBName = must("DB_NAME")
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
