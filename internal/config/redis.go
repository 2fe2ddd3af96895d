package config

// This file defines a Redis client constructor for the application.  Redis is
// used for distributed rate limiting and caching of the public catalog
// listing.  The client parameters are loaded from environment variables.  If
// connection fails during startup, the function returns nil and callers
// should degrade gracefully by disabling caching and rate limiting.

import (
    "context"
    "crypto/tls"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//   REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//   REDIS_ADDR – host:port shorthand (takes precedence if both host/port and addr are set)
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
//   REDIS_TLS – enable TLS when "true" or "1"
//   REDIS_TLS_SKIP_VERIFY – skip certificate verification when "true" or "1"
// The returned client may be nil if a connection cannot be established.
func NewRedisClient() *redis.Client {
    host := os.Getenv("REDIS_HOST")
    port := os.Getenv("REDIS_PORT")
    addr := os.Getenv("REDIS_ADDR")
    if host != "" && port != "" {
        addr = host + ":" + port
    }
    if addr == "" {
        addr = "localhost:6379"
    }
    pwd := os.Getenv("REDIS_PASSWORD")
    dbNum := 0
    if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
        if n, err := strconv.Atoi(dbStr); err == nil {
            dbNum = n
        }
    }
    client := redis.NewClient(&redis.Options{
        Addr:      addr,
        Password:  pwd,
        DB:        dbNum,
        TLSConfig: redisTLSConfig(),
    })
    // Ping the server with a short timeout.  Return nil on failure.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}

// redisTLSConfig builds the TLS configuration for the Redis connection.
// TLS is off unless REDIS_TLS is set. Certificate verification stays on
// by default; REDIS_TLS_SKIP_VERIFY must be set explicitly to disable it
// for self-signed deployments.
func redisTLSConfig() *tls.Config {
    if !boolEnv("REDIS_TLS") {
        return nil
    }
    return &tls.Config{InsecureSkipVerify: boolEnv("REDIS_TLS_SKIP_VERIFY")}
}

// boolEnv treats "true" (any case) and "1" as on.
func boolEnv(name string) bool {
    v := os.Getenv(name)
    return strings.EqualFold(v, "true") || v == "1"
}
