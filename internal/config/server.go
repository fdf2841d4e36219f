package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Server holds the HTTP API settings, read from the environment (and .env when present).
type Server struct {
	Port         string
	Env          string
	LogLevel     string
	SegmentsFile string
	CORSOrigins  []string
	RoundTTL     time.Duration
}

func (s Server) Production() bool { return s.Env == "production" }

// LoadServer reads API_PORT, API_ENV, LOG_LEVEL, SEGMENTS_FILE,
// CORS_ALLOWED_ORIGINS (comma-separated) and ROUND_CACHE_TTL.
func LoadServer(envFiles ...string) Server {
	if err := godotenv.Load(envFiles...); err != nil {
		logrus.Debugf("no .env loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEGMENTS_FILE", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("ROUND_CACHE_TTL", "1h")

	ttl := v.GetDuration("ROUND_CACHE_TTL")
	if ttl <= 0 {
		ttl = time.Hour
	}

	return Server{
		Port:         v.GetString("API_PORT"),
		Env:          v.GetString("API_ENV"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		SegmentsFile: v.GetString("SEGMENTS_FILE"),
		CORSOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RoundTTL:     ttl,
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
