package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	// DevJWTSecret is used when JWT_SECRET is not provided.
	DevJWTSecret = "dev-secret-change-me"
)

// ErrMissingMongoURI is returned when the mongo driver is selected without a connection string.
var ErrMissingMongoURI = errors.New("MONGO_URI is required")

type Config struct {
	MongoURI    string
	MongoDB     string
	DBDriver    string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	KakaoAppKey string
	CORSOrigins string
	LogLevel    string
	LogFormat   string
	BodyLimitMB int
	DBTimeout   time.Duration
	// ImportTimeout bounds one spreadsheet import.
	ImportTimeout time.Duration
}

// UsesDevSecret reports whether the token signing key fell back to the built-in value.
func (c Config) UsesDevSecret() bool { return c.JWTSecret == DevJWTSecret }

func setDefaults(v *viper.Viper) {
	v.SetDefault("MONGO_DB", "schools")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("PORT", "3000")
	v.SetDefault("JWT_SECRET", DevJWTSecret)
	v.SetDefault("JWT_TTL", "72h")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("BODY_LIMIT_MB", 10)
	v.SetDefault("DB_TIMEOUT", "10s")
	v.SetDefault("IMPORT_TIMEOUT", "5m")
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (Config, error) {
	// a missing .env is fine, the environment is authoritative
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		MongoURI:      strings.TrimSpace(v.GetString("MONGO_URI")),
		MongoDB:       v.GetString("MONGO_DB"),
		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		Port:          v.GetString("PORT"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTTTL:        v.GetDuration("JWT_TTL"),
		KakaoAppKey:   v.GetString("KAKAO_APP_KEY"),
		CORSOrigins:   v.GetString("CORS_ORIGINS"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		BodyLimitMB:   v.GetInt("BODY_LIMIT_MB"),
		DBTimeout:     v.GetDuration("DB_TIMEOUT"),
		ImportTimeout: v.GetDuration("IMPORT_TIMEOUT"),
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevJWTSecret
	}
	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = 72 * time.Hour
	}
	if cfg.BodyLimitMB <= 0 {
		cfg.BodyLimitMB = 10
	}
	if cfg.DBTimeout <= 0 {
		cfg.DBTimeout = 10 * time.Second
	}
	if cfg.ImportTimeout <= 0 {
		cfg.ImportTimeout = 5 * time.Minute
	}

	switch cfg.DBDriver {
	case DriverMongo:
		if cfg.MongoURI == "" {
			return cfg, ErrMissingMongoURI
		}
	case DriverMemory:
	default:
		return cfg, errors.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}
