package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, loaded once at startup. All
// provider credentials and database identifiers live here, never in code.
type Config struct {
	Addr     string `env:"HOMEBOARD_ADDR" env-default:":8080"`
	Env      string `env:"HOMEBOARD_ENV" env-default:"development"`
	LogLevel string `env:"HOMEBOARD_LOG_LEVEL" env-default:"info"`

	NotionToken        string `env:"NOTION_API_KEY"`
	TasksDatabaseID    string `env:"NOTION_TASKS_DB_ID"`
	RoutinesDatabaseID string `env:"NOTION_ROUTINES_DB_ID"`

	GoogleClientEmail string `env:"GOOGLE_CLIENT_EMAIL"`
	GooglePrivateKey  string `env:"GOOGLE_PRIVATE_KEY"`
	GoogleCalendarID  string `env:"GOOGLE_CALENDAR_ID" env-default:"primary"`

	PasswordHash  string `env:"DASHBOARD_PASSWORD_HASH"`
	SessionSecret string `env:"JWT_SECRET"`

	WeatherAPIKey string  `env:"WEATHER_API_KEY"`
	WeatherLat    float64 `env:"WEATHER_LAT" env-default:"37.5665"`
	WeatherLon    float64 `env:"WEATHER_LON" env-default:"126.9780"`

	UpcomingDays     int `env:"HOMEBOARD_UPCOMING_DAYS" env-default:"7"`
	CompletedLimit   int `env:"HOMEBOARD_COMPLETED_LIMIT" env-default:"5"`
	RefreshIntervalS int `env:"HOMEBOARD_REFRESH_INTERVAL" env-default:"60"`
}

// Load reads an optional .env file, then populates the config from the
// environment and validates the required credentials.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		// Missing .env is fine; real deployments set the environment directly.
		_ = godotenv.Load(envFile)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Keys pasted into .env files commonly carry literal \n sequences.
	cfg.GooglePrivateKey = strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	for _, kv := range []struct{ key, val string }{
		{"NOTION_API_KEY", c.NotionToken},
		{"NOTION_TASKS_DB_ID", c.TasksDatabaseID},
		{"NOTION_ROUTINES_DB_ID", c.RoutinesDatabaseID},
		{"DASHBOARD_PASSWORD_HASH", c.PasswordHash},
		{"JWT_SECRET", c.SessionSecret},
	} {
		if kv.val == "" {
			missing = append(missing, kv.key)
		}
	}
	if len(missing) > 0 {
		return errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}
	return nil
}

// Production reports whether the process runs outside local development,
// which controls the Secure flag on the session cookie.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// WeatherConfigured reports whether the optional weather integration has a
// usable key. The sample-file placeholder counts as unconfigured.
func (c *Config) WeatherConfigured() bool {
	return c.WeatherAPIKey != "" && c.WeatherAPIKey != "your_openweathermap_api_key"
}
