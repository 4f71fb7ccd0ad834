package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// PublicBaseURL is the origin the dashboard runs on; hand-off links
	// (<base>/mobile-upload?sessionId=...) are built from it.
	PublicBaseURL string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Secure    bool

	// SessionTTL is how long a PENDING evidence session may live before the
	// cleanup job removes it.
	SessionTTL time.Duration

	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	env := Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: envOr("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: envOr("DB_HOST", "127.0.0.1:3306"),
		DBName: envOr("DB_NAME", "cobranza"),

		JWTSecret: envOr("JWT_SECRET", "super-secret-key-change-me"),

		PublicBaseURL: strings.TrimRight(envOr("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),

		S3Endpoint:  envOr("S3_ENDPOINT", "127.0.0.1:9000"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOr("S3_BUCKET", "cobranza-evidencias"),
		S3Secure:    envBool("S3_SECURE", false),

		SessionTTL: envHours("SESSION_TTL_HOURS", 24),
	}

	origins := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if origins == "" {
		env.CORSOrigins = []string{"http://localhost:3000"}
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	return env
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envHours(key string, fallback int) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return time.Duration(fallback) * time.Hour
	}
	h, err := strconv.Atoi(v)
	if err != nil || h <= 0 {
		return time.Duration(fallback) * time.Hour
	}
	return time.Duration(h) * time.Hour
}
