package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	AdminLogin        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string

	DistanceAPIKey string
	DistanceAPIURL string

	CORSOrigins []string
}

func LoadEnv() Env {
	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "cartrans"),

		AdminLogin:        getenv("ADMIN_LOGIN", "admin"),
		AdminPassword:     getenv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		JWTSecret:         getenv("JWT_SECRET", "super-secret-key-change-me"),

		DistanceAPIKey: strings.TrimSpace(os.Getenv("DISTANCE_API_KEY")),
		DistanceAPIURL: getenv("DISTANCE_API_URL", "https://api.openrouteservice.org/v2"),

		CORSOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
