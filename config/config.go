package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Fetcher    FetcherConfig    `yaml:"fetcher"`
	Auth       AuthConfig       `yaml:"auth"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	User    string `yaml:"user"`
	Name    string `yaml:"name"`
	SSLMode string `yaml:"ssl_mode"`

	// Password is only ever read from the environment.
	Password string `yaml:"-"`
}

// ClassifierConfig configures the Gemini-backed classifier client.
// The API key is injected from the environment, never from yaml.
type ClassifierConfig struct {
	Model      string `yaml:"model"`
	MaxRetries int    `yaml:"max_retries"`

	APIKey string `yaml:"-"`
}

type FetcherConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`

	// RenderJS switches website fetching to a headless browser for pages
	// that only produce content after client-side rendering.
	RenderJS bool `yaml:"render_js"`

	// Extractor selects the body-text extraction strategy: "dom" or
	// "readability".
	Extractor string `yaml:"extractor"`
}

type AuthConfig struct {
	Issuer string `yaml:"issuer"`

	Secret string `yaml:"-"`
}

func (f FetcherConfig) Timeout() time.Duration {
	if f.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(f.TimeoutSeconds) * time.Second
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Classifier.APIKey = os.Getenv("GEMINI_API_KEY")
	c.Auth.Secret = os.Getenv("JWT_SECRET")

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
