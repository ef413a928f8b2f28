package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	GeneratorBackend = "backend"
	GeneratorGemini  = "gemini"
)

type Env struct {
	AppAddr string
	GinMode string

	BackendBaseURL string
	BackendTimeout time.Duration

	DBDSN string

	SessionSecret        string
	SessionTTL           time.Duration
	SessionCookie        string
	SessionSweepInterval time.Duration
	CookieSecure         bool
	SignupTTL            time.Duration

	CORSAllowedOrigins []string

	ItineraryGenerator string
	GeminiAPIKey       string
	GeminiModel        string
}

// LoadEnv reads .env (when present) and then the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] no .env file found, relying on process environment")
	}

	return Env{
		AppAddr:              getEnv("APP_ADDR", ":8080"),
		GinMode:              getEnv("GIN_MODE", ""),
		BackendBaseURL:       strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8081/api"), "/"),
		BackendTimeout:       getDurationEnv("BACKEND_TIMEOUT", 15*time.Second),
		DBDSN:                getEnv("DB_DSN", ""),
		SessionSecret:        getEnv("SESSION_SECRET", "dev-session-secret-change-me"),
		SessionTTL:           getDurationEnv("SESSION_TTL", 72*time.Hour),
		SessionCookie:        getEnv("SESSION_COOKIE", "tw_session"),
		SessionSweepInterval: getDurationEnv("SESSION_SWEEP_INTERVAL", time.Hour),
		CookieSecure:         getBoolEnv("COOKIE_SECURE", false),
		SignupTTL:            getDurationEnv("SIGNUP_TTL", 10*time.Minute),
		CORSAllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}),
		ItineraryGenerator: strings.ToLower(getEnv("ITINERARY_GENERATOR", GeneratorBackend)),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

// IsRelease reports whether gin runs in release mode.
func (e Env) IsRelease() bool {
	return e.GinMode == "release"
}

// Validate returns every configuration problem joined into one error.
func (e Env) Validate() error {
	var errs []error

	if e.AppAddr == "" {
		errs = append(errs, errors.New("APP_ADDR is required"))
	}
	if e.BackendBaseURL == "" {
		errs = append(errs, errors.New("BACKEND_BASE_URL is required"))
	}
	if e.BackendTimeout <= 0 {
		errs = append(errs, errors.New("BACKEND_TIMEOUT must be positive"))
	}
	if e.SessionCookie == "" {
		errs = append(errs, errors.New("SESSION_COOKIE is required"))
	}
	if e.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if e.SignupTTL <= 0 {
		errs = append(errs, errors.New("SIGNUP_TTL must be positive"))
	}
	if e.IsRelease() && len(e.SessionSecret) < 16 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 16 bytes in release mode"))
	}
	if len(e.CORSAllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	switch e.ItineraryGenerator {
	case GeneratorBackend:
	case GeneratorGemini:
		if e.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when ITINERARY_GENERATOR=gemini"))
		}
	default:
		errs = append(errs, fmt.Errorf("ITINERARY_GENERATOR must be 'backend' or 'gemini', got '%s'", e.ItineraryGenerator))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[CONFIG] %s=%q is not a valid duration, using default %s", key, v, fallback)
		return fallback
	}
	return d
}

func getBoolEnv(key string, fallback bool) bool {
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

func getSliceEnv(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
