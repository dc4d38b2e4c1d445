package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config is everything the process needs at startup. Missing signing secret or
// database coordinates are fatal by contract.
type Config struct {
	Port       string
	DSN        string
	JWTSecret  []byte
	BcryptCost int
	TokenTTL   time.Duration
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := strings.TrimSpace(os.Getenv("DB_USER"))
	dbName := strings.TrimSpace(os.Getenv("DB_NAME"))
	if user == "" || dbName == "" {
		return "", fmt.Errorf("database connection not configured: set MYSQL_URL or DB_USER and DB_NAME")
	}

	pass := os.Getenv("DB_PASS")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	cost := bcrypt.DefaultCost
	if raw := strings.TrimSpace(os.Getenv("BCRYPT_COST")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < bcrypt.MinCost || parsed > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", raw)
		}
		cost = parsed
	}

	ttl := time.Hour
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES %q", raw)
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	return &Config{
		Port:       envOrDefault("PORT", "8080"),
		DSN:        dsn,
		JWTSecret:  []byte(secret),
		BcryptCost: cost,
		TokenTTL:   ttl,
	}, nil
}
