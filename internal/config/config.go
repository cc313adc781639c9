package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string        `yaml:"env" env-default:"local"`
	Secret     string        `yaml:"secret" env:"SECRET"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"1h"`
	DB         DB            `yaml:"db"`
	Feed       Feed          `yaml:"feed"`
	Weather    Weather       `yaml:"weather"`
	HTTPServer HTTPServer    `yaml:"http_server"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type DB struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     string `yaml:"port" env-default:"5432"`
	Username string `yaml:"username" env-default:"postgres"`
	DBName   string `yaml:"dbname" env-default:"camera_wall"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
	Password string `yaml:"-"`
}

// Feed describes the upstream camera feed. When URL is empty the service
// falls back to its own camera registry as the feed source.
type Feed struct {
	URL       string        `yaml:"url"`
	BatchSize int           `yaml:"batch_size" env-default:"9"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
}

type Weather struct {
	BaseURL   string        `yaml:"base_url" env-default:"https://api.weather.gov"`
	UserAgent string        `yaml:"user_agent" env-default:"camera_wall"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("CONFIG_PATH is required")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}
