package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string
	GRPCPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	TokenTTL time.Duration

	LogLevel string
	LogFile  string

	ReleaseResourcesOnDelay bool

	TokenCleanupSchedule  string
	OverdueReportSchedule string
	HealthProbeSchedule   string
}

var defaults = map[string]any{
	"HTTP_PORT":                  "8080",
	"GRPC_PORT":                  "9090",
	"DB_HOST":                    "localhost",
	"DB_PORT":                    "5432",
	"DB_USER":                    "postgres",
	"DB_PASSWORD":                "postgres",
	"DB_NAME":                    "logistics",
	"DB_SSLMODE":                 "disable",
	"REDIS_ADDR":                 "",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"TOKEN_TTL":                  "24h",
	"LOG_LEVEL":                  "info",
	"LOG_FILE":                   "",
	"RELEASE_RESOURCES_ON_DELAY": false,
	"TOKEN_CLEANUP_SCHEDULE":     "0 */10 * * * *",
	"OVERDUE_REPORT_SCHEDULE":    "0 */5 * * * *",
	"HEALTH_PROBE_SCHEDULE":      "*/15 * * * * *",
}

// LoadConfig reads envFile when it exists and then the process environment,
// which wins over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		// A missing file is normal outside local development.
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return configFrom(v)
}

func configFrom(v *viper.Viper) (Config, error) {
	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	cfg := Config{
		HTTPPort:                v.GetString("HTTP_PORT"),
		GRPCPort:                v.GetString("GRPC_PORT"),
		DBHost:                  v.GetString("DB_HOST"),
		DBPort:                  v.GetString("DB_PORT"),
		DBUser:                  v.GetString("DB_USER"),
		DBPassword:              v.GetString("DB_PASSWORD"),
		DBName:                  v.GetString("DB_NAME"),
		DBSslMode:               v.GetString("DB_SSLMODE"),
		RedisAddr:               v.GetString("REDIS_ADDR"),
		RedisPassword:           v.GetString("REDIS_PASSWORD"),
		RedisDB:                 v.GetInt("REDIS_DB"),
		TokenTTL:                ttl,
		LogLevel:                strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFile:                 v.GetString("LOG_FILE"),
		ReleaseResourcesOnDelay: v.GetBool("RELEASE_RESOURCES_ON_DELAY"),
		TokenCleanupSchedule:    v.GetString("TOKEN_CLEANUP_SCHEDULE"),
		OverdueReportSchedule:   v.GetString("OVERDUE_REPORT_SCHEDULE"),
		HealthProbeSchedule:     v.GetString("HEALTH_PROBE_SCHEDULE"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		errs = append(errs, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// DSN is the libpq connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) UseRedis() bool {
	return c.RedisAddr != ""
}
