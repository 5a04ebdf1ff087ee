package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SourceFixtures   = "fixtures"
	SourcePostgres   = "postgres"
	SourceTripReport = "tripreport"
)

type Config struct {
	Env              string           `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger           string           `yaml:"jaeger" env:"JAEGER"`
	BidGroupCacheTTL time.Duration    `yaml:"bid_group_cache_ttl" env:"BID_GROUP_CACHE_TTL" env-default:"15m"`
	Log              LogConfig        `yaml:"log"`
	GRPC             GRPCConfig       `yaml:"grpc"`
	HTTP             HTTPConfig       `yaml:"http"`
	DB               DBConfig         `yaml:"db"`
	Redis            RedisConfig      `yaml:"redis"`
	Storage          StorageConfig    `yaml:"storage"`
	TripReport       TripReportConfig `yaml:"trip_report"`
	Compiler         CompilerConfig   `yaml:"compiler"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type GRPCConfig struct {
	Host    string        `yaml:"host" env:"GRPC_HOST"`
	Port    int           `yaml:"port" env:"GRPC_PORT" env-default:"44050"`
	Timeout time.Duration `yaml:"timeout" env:"GRPC_TIMEOUT" env-default:"5s"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DBConfig struct {
	DSN      string `yaml:"dsn" env:"DB_DSN"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"require"`
}

func (c DBConfig) DatabaseURL() string {
	if c.DSN != "" {
		return c.DSN
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}

	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// StorageConfig picks where profiles and trips come from. Profiles: fixtures
// or postgres. Trips: fixtures, postgres or tripreport.
type StorageConfig struct {
	Profiles    string `yaml:"profiles" env:"STORAGE_PROFILES" env-default:"fixtures"`
	Trips       string `yaml:"trips" env:"STORAGE_TRIPS" env-default:"fixtures"`
	FixturesDir string `yaml:"fixtures_dir" env:"FIXTURES_DIR" env-default:"config/fixtures"`
}

func (c StorageConfig) UsesPostgres() bool {
	return c.Profiles == SourcePostgres || c.Trips == SourcePostgres
}

type TripReportConfig struct {
	BaseURL string        `yaml:"base_url" env:"TRIP_REPORT_BASE_URL"`
	Token   string        `yaml:"token" env:"TRIP_REPORT_TOKEN"`
	Timeout time.Duration `yaml:"timeout" env:"TRIP_REPORT_TIMEOUT" env-default:"5s"`
}

type CompilerConfig struct {
	MaxLines int `yaml:"max_lines" env:"COMPILER_MAX_LINES" env-default:"5"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
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
		return nil, fmt.Errorf("config file does not exists: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Profiles {
	case SourceFixtures, SourcePostgres:
	default:
		return fmt.Errorf("unknown profiles source %q", c.Storage.Profiles)
	}

	switch c.Storage.Trips {
	case SourceFixtures, SourcePostgres, SourceTripReport:
	default:
		return fmt.Errorf("unknown trips source %q", c.Storage.Trips)
	}

	return nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
