package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod"`
	Storage    Storage    `yaml:"storage"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	MySQL      MySQL      `yaml:"mysql"`
	Redis      Redis      `yaml:"redis"`
	HTTPServer `yaml:"http_server"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Username string `yaml:"username" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database string `yaml:"database" env:"POSTGRES_DB"`
	MaxConns int32  `yaml:"max_conns" env-default:"10"`
}

type MySQL struct {
	Host            string        `yaml:"host" env:"MYSQL_HOST" env-default:"localhost"`
	Port            string        `yaml:"port" env:"MYSQL_PORT" env-default:"3306"`
	Username        string        `yaml:"username" env:"MYSQL_USER"`
	Password        string        `yaml:"password" env:"MYSQL_PASSWORD"`
	Database        string        `yaml:"database" env:"MYSQL_DATABASE"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"5m"`
}

type Redis struct {
	Enabled   bool          `yaml:"enabled" env:"REDIS_ENABLED"`
	Addr      string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password  string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db" env:"REDIS_DB"`
	TTL       time.Duration `yaml:"ttl" env-default:"10m"`
	OpTimeout time.Duration `yaml:"op_timeout" env-default:"50ms"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	AllowedMethods   []string      `yaml:"allowed_methods" env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string      `yaml:"allowed_headers" env-default:"*"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("config reading error: %w", err)
	}

	if cfg.Storage.Driver != DriverPostgres && cfg.Storage.Driver != DriverMySQL {
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}

	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
