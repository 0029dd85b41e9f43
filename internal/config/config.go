package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	API        API        `yaml:"api"`
	Session    Session    `yaml:"session"`
	Logger     Logger     `yaml:"logger"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":3000"`
	Timeout        time.Duration `yaml:"timeout" env-default:"15s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env-default:"*"`
	SecureCookies  bool          `yaml:"secure_cookies"`
}

// API describes the remote FoodKart API the console talks to.
type API struct {
	BaseURL       string        `yaml:"base_url" env:"API_BASE_URL" env-required:"true"`
	Timeout       time.Duration `yaml:"timeout" env-default:"10s"`
	MaxUploadSize int64         `yaml:"max_upload_size" env-default:"5242880"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl" env-default:"168h"`
	// HashKey signs session and flash cookies. An empty key is replaced with a random one at start,
	// which invalidates every session on restart.
	HashKey  string `yaml:"hash_key" env:"SESSION_HASH_KEY"`
	BlockKey string `yaml:"block_key" env:"SESSION_BLOCK_KEY"`
}

type Logger struct {
	Level      string `yaml:"level" env-default:"info"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename" env-default:"logs/vendor-console.log"`
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
		return nil, &LoadError{Path: configPath, Reason: "config file does not exist"}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, &LoadError{Path: configPath, Reason: "config reading error: " + err.Error()}
	}

	return &cfg, nil
}

type LoadError struct {
	Path   string
	Reason string
}

func (e *LoadError) Error() string {
	return e.Reason + ": " + e.Path
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
