package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DefaultProxyPath    = "config/price-proxy.yaml"
	DefaultCalendarPath = "config/price-calendar.yaml"
)

// ProxyConfig configures the price-proxy binary.
type ProxyConfig struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger      string            `yaml:"jaeger" env:"JAEGER"`
	Log         LogConfig         `yaml:"log"`
	HTTP        HTTPConfig        `yaml:"http"`
	GRPC        GRPCConfig        `yaml:"grpc"`
	Skyscrapper SkyscrapperConfig `yaml:"skyscrapper"`
	CORS        CORSConfig        `yaml:"cors"`
}

// CalendarConfig configures the price-calendar terminal client.
type CalendarConfig struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Log     LogConfig     `yaml:"log"`
	Pricing PricingConfig `yaml:"pricing"`
	Plain   bool          `yaml:"plain" env:"PRICE_CALENDAR_PLAIN" env-default:"false"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	// File is where the terminal client writes its logs. Empty means stderr.
	File string `yaml:"file" env:"LOG_FILE"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"GRPC_PORT" env-default:"44046"`
}

type SkyscrapperConfig struct {
	BaseURL string        `yaml:"base_url" env:"SKYSCRAPPER_BASE_URL" env-default:"https://sky-scrapper.p.rapidapi.com/api/v1/flights"`
	APIKey  string        `yaml:"api_key" env:"SKYSCRAPPER_API_KEY"`
	Host    string        `yaml:"host" env:"SKYSCRAPPER_HOST" env-default:"sky-scrapper.p.rapidapi.com"`
	Timeout time.Duration `yaml:"timeout" env:"SKYSCRAPPER_TIMEOUT" env-default:"10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

type PricingConfig struct {
	BaseURL string        `yaml:"base_url" env:"PRICING_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"PRICING_TIMEOUT" env-default:"10s"`
}

func MustLoadProxy() *ProxyConfig {
	var cfg ProxyConfig
	mustLoadByPath(fetchConfigPath(DefaultProxyPath), &cfg)
	return &cfg
}

func MustLoadCalendar() *CalendarConfig {
	var cfg CalendarConfig
	mustLoadByPath(fetchConfigPath(DefaultCalendarPath), &cfg)
	return &cfg
}

func MustLoadProxyByPath(configPath string) *ProxyConfig {
	var cfg ProxyConfig
	mustLoadByPath(configPath, &cfg)
	return &cfg
}

func MustLoadCalendarByPath(configPath string) *CalendarConfig {
	var cfg CalendarConfig
	mustLoadByPath(configPath, &cfg)
	return &cfg
}

func mustLoadByPath(configPath string, cfg any) {
	if configPath == "" {
		panic("config path is empty")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exists: " + configPath)
	}

	if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}
}

func fetchConfigPath(def string) string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = def
	}

	return res
}
