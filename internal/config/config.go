package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`
	WebDir      string `mapstructure:"web_dir"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Log    bool   `mapstructure:"log"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type StorageConfig struct {
	Driver        string `mapstructure:"driver"`
	LocalDir      string `mapstructure:"local_dir"`
	PublicURL     string `mapstructure:"public_url"`
	CloudinaryURL string `mapstructure:"cloudinary_url"`
}

type AIConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Session SessionConfig `mapstructure:"session"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Storage StorageConfig `mapstructure:"storage"`
	AI      AIConfig      `mapstructure:"ai"`
}

// Production reports whether the server runs in release mode.
func (c *Config) Production() bool {
	return c.Server.Mode == "release"
}

// Origins splits the configured CORS origins.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.Server.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

const minSecretLen = 32

var defaults = map[string]any{
	"server.port":            "8080",
	"server.mode":            "debug",
	"server.web_dir":         "./web",
	"server.cors_origins":    "http://localhost:3000",
	"db.driver":              "sqlite",
	"db.dsn":                 "jobify.db",
	"db.log":                 false,
	"session.secret":         "",
	"admin.email":            "admin@jobify.local",
	"admin.password":         "Admin123!",
	"storage.driver":         "local",
	"storage.local_dir":      "./uploads",
	"storage.public_url":     "http://localhost:8080/uploads",
	"storage.cloudinary_url": "",
	"ai.provider":            "googleai",
	"ai.model":               "gemini-1.5-flash",
	"ai.api_key":             "",
}

// Load reads .env, an optional YAML file named by JOBIFY_CONFIG and the
// environment (SERVER_PORT, DB_DSN, SESSION_SECRET, ...).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("JOBIFY_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// provider specific key names, as the hosted consoles hand them out
	if cfg.AI.APIKey == "" {
		switch cfg.AI.Provider {
		case "openai":
			cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			cfg.AI.APIKey = os.Getenv("GOOGLE_API_KEY")
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Session.Secret) < minSecretLen {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters", minSecretLen)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown SERVER_MODE %q", c.Server.Mode)
	}
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return errors.New("DB_DSN is not set")
	}
	switch c.Storage.Driver {
	case "local":
	case "cloudinary":
		if c.Storage.CloudinaryURL == "" {
			return errors.New("STORAGE_CLOUDINARY_URL is not set")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.AI.Provider {
	case "googleai", "openai":
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AI.Provider)
	}
	return nil
}
