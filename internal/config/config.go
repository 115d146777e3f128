package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"animals-safety/internal/platform/httpclient"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFileName se busca en el directorio actual si no pasan --config.
const DefaultFileName = "animals.yaml"

// EnvPrefix: ANIMALS_STORAGE_DSN -> storage.dsn
const EnvPrefix = "ANIMALS_"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Log     Log     `koanf:"log"`
	Storage Storage `koanf:"storage"`
	Notify  Notify  `koanf:"notify"`
}

type HTTP struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

type Storage struct {
	Driver  string `koanf:"driver"`
	DSN     string `koanf:"dsn"`
	Migrate bool   `koanf:"migrate"`
}

type Notify struct {
	Buffer  int `koanf:"buffer"`
	History int `koanf:"history"`

	// WebhookURL vacío => sin webhook.
	WebhookURL     string        `koanf:"webhook_url"`
	WebhookTimeout time.Duration `koanf:"webhook_timeout"`
}

// flagKeys traduce flags de la CLI a keys de config.
var flagKeys = map[string]string{
	"addr":           "http.addr",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"storage-driver": "storage.driver",
	"dsn":            "storage.dsn",
	"migrate":        "storage.migrate",
}

func defaults() map[string]any {
	return map[string]any{
		"http.addr":              ":8080",
		"http.read_timeout":      5 * time.Second,
		"http.write_timeout":     10 * time.Second,
		"http.shutdown_timeout":  10 * time.Second,
		"log.level":              "info",
		"log.format":             "text",
		"log.app":                "animals-safety",
		"storage.driver":         DriverMemory,
		"storage.dsn":            "",
		"storage.migrate":        true,
		"notify.buffer":          16,
		"notify.history":         50,
		"notify.webhook_url":     "",
		"notify.webhook_timeout": 2 * time.Second,
	}
}

// Load arma la config por capas: defaults < archivo yaml < env < flags.
// cfgFile vacío => se intenta DefaultFileName; si no existe no es error.
// flags puede ser nil; solo se aplican los que el usuario cambió.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	path, err := resolveFile(cfgFile)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	// PORT (estilo PaaS) pisa http.addr; env y flags todavía pueden pisarlo.
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		_ = k.Set("http.addr", ":"+v)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey: ANIMALS_HTTP_READ_TIMEOUT -> http.read_timeout (solo el primer "_" separa sección).
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func resolveFile(cfgFile string) (string, error) {
	cfgFile = strings.TrimSpace(cfgFile)
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return "", fmt.Errorf("config file %s: %w", cfgFile, err)
		}
		return cfgFile, nil
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName, nil
	}
	return "", nil
}

func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case "":
		c.Storage.Driver = DriverMemory
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("storage.dsn required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("http.addr required")
	}

	c.Notify.WebhookURL = strings.TrimSpace(c.Notify.WebhookURL)
	if c.Notify.WebhookURL != "" {
		if err := httpclient.ValidateURL(c.Notify.WebhookURL); err != nil {
			return fmt.Errorf("notify.webhook_url: %w", err)
		}
	}
	return nil
}
