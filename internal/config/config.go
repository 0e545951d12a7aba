package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DBTypePostgres = "postgres"
	DBTypeMemory   = "memory"
)

type AppCfg struct {
	Env      string
	Port     string
	LogLevel string
}

type DBCfg struct {
	Type           string // postgres | memory
	DSN            string // overrides the discrete fields below when set
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	ConnectTimeout time.Duration
}

type HTTPCfg struct {
	RateLimitPerMin int
	AllowedOrigins  []string
}

type Cfg struct {
	App  AppCfg
	DB   DBCfg
	HTTP HTTPCfg
}

// Load reads .env (if present) and the process environment. Invalid
// settings are fatal.
func Load() Cfg {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	cfg, err := FromViper(v)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

// FromViper builds a Cfg from v after applying defaults.
func FromViper(v *viper.Viper) (Cfg, error) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_TYPE", DBTypeMemory)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "road_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "30s")
	v.SetDefault("RATE_LIMIT_PER_MIN", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	cfg := Cfg{
		App: AppCfg{
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("APP_PORT"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBCfg{
			Type:           strings.ToLower(strings.TrimSpace(v.GetString("DB_TYPE"))),
			DSN:            strings.TrimSpace(v.GetString("DB_DSN")),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetInt("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		HTTP: HTTPCfg{
			RateLimitPerMin: v.GetInt("RATE_LIMIT_PER_MIN"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Cfg{}, err
	}
	return cfg, nil
}

// Validate fails fast on settings the server cannot start with.
func (c Cfg) Validate() error {
	switch c.DB.Type {
	case DBTypeMemory:
	case DBTypePostgres:
		if c.DB.DSN == "" && (c.DB.Host == "" || c.DB.Name == "") {
			return fmt.Errorf("DB_HOST and DB_NAME (or DB_DSN) are required for DB_TYPE=%s", DBTypePostgres)
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE %q (want %s or %s)", c.DB.Type, DBTypePostgres, DBTypeMemory)
	}
	if c.HTTP.RateLimitPerMin < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MIN must be >= 0")
	}
	return nil
}

// PostgresDSN returns DB.DSN, or a postgres:// URL assembled from the
// discrete settings.
func (d DBCfg) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	if d.User != "" {
		u.User = url.UserPassword(d.User, d.Password)
	}
	return u.String()
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
