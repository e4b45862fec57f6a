package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	GinMode  string
	LogLevel string
	ClubName string

	DBDriver    string // postgres / mysql
	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration

	AllowWalletHeader bool
	RequireSignature  bool

	AdminSecret     string
	AdminSecretHash string
	RosterLimit     int

	RateLimitStore    string // memory / redis
	ContactRateLimit  int
	ContactRateWindow time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	ContactInbox string

	KafkaBrokers []string
	KafkaTopic   string
}

var (
	ErrMissingDSN         = errors.New("DATABASE_DSN is required")
	ErrMissingAdminSecret = errors.New("ADMIN_SECRET or ADMIN_SECRET_HASH is required")
	ErrMissingJWTSecret   = errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
	ErrUnknownDriver      = errors.New("DB_DRIVER must be postgres or mysql")
	ErrUnknownLimitStore  = errors.New("RATE_LIMIT_STORE must be memory or redis")
)

// Load 读取环境变量，存在 .env 时先加载（不覆盖已有变量）
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppPort:  getEnv("APP_PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "release"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		ClubName: getEnv("CLUB_NAME", "Tech Club"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		JWTAccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		AccessTTL:        getDuration("ACCESS_TTL", 30*time.Minute),
		RefreshTTL:       getDuration("REFRESH_TTL", 24*time.Hour),

		AllowWalletHeader: getBool("AUTH_ALLOW_WALLET_HEADER", true),
		RequireSignature:  getBool("AUTH_REQUIRE_SIGNATURE", false),

		AdminSecret:     os.Getenv("ADMIN_SECRET"),
		AdminSecretHash: os.Getenv("ADMIN_SECRET_HASH"),
		RosterLimit:     getInt("ROSTER_LIMIT", 15),

		RateLimitStore:    strings.ToLower(getEnv("RATE_LIMIT_STORE", "memory")),
		ContactRateLimit:  getInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow: getDuration("CONTACT_RATE_WINDOW", 15*time.Minute),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		ContactInbox: os.Getenv("CONTACT_INBOX"),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "club-events"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.DatabaseDSN == "" {
		return ErrMissingDSN
	}
	if c.DBDriver != "postgres" && c.DBDriver != "mysql" {
		return ErrUnknownDriver
	}
	if c.AdminSecret == "" && c.AdminSecretHash == "" {
		return ErrMissingAdminSecret
	}
	if c.JWTAccessSecret == "" || c.JWTRefreshSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.RateLimitStore != "memory" && c.RateLimitStore != "redis" {
		return ErrUnknownLimitStore
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
