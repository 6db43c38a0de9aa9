package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Configuration for the banner host. Values come from an optional YAML file,
// then the environment.
type Configuration struct {
	AddrHTTP string `yaml:"http-addr" env:"BANNER_HTTP" env-default:":8080" env-description:"HTTP address"`
	Dev      bool   `yaml:"dev" env:"BANNER_DEV" env-default:"false" env-description:"show error details"`

	// page
	Title      string `yaml:"title" env:"BANNER_TITLE" env-default:"AHC - Da sáng chào hè" env-description:"document title"`
	Lang       string `yaml:"lang" env:"BANNER_LANG" env-default:"vi" env-description:"document language"`
	Stylesheet string `yaml:"stylesheet" env:"BANNER_STYLESHEET" env-default:"" env-description:"stylesheet resolving utility classes"`

	// assets
	AssetDir    string        `yaml:"asset-dir" env:"BANNER_ASSET_DIR" env-default:"" env-description:"serve assets from this directory instead of the embedded set"`
	MaxCacheAge time.Duration `yaml:"max-cache-age" env:"BANNER_MAX_CACHE_AGE" env-default:"1h" env-description:"browser cache control for assets"`

	// export
	ExportDir string `yaml:"export-dir" env:"BANNER_EXPORT_DIR" env-default:"dist" env-description:"static export directory"`

	TimeoutRead     time.Duration `yaml:"timeout-read" env-default:"10s"`
	TimeoutWrite    time.Duration `yaml:"timeout-write" env-default:"20s"`
	TimeoutShutdown time.Duration `yaml:"timeout-shutdown" env-default:"5s"`
}

// Load reads path if it exists, otherwise just the environment.
func Load(path string) (*Configuration, error) {
	cfg := &Configuration{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			return cfg, cfg.validate()
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, cfg.validate()
}

func (c *Configuration) validate() error {
	if c.AddrHTTP == "" {
		return errors.New("http-addr cannot be empty")
	}
	if c.MaxCacheAge < 0 {
		return errors.New("max-cache-age cannot be negative")
	}
	return nil
}

// Usage describes the environment variables.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Configuration{}, nil)
	if err != nil {
		return err.Error()
	}
	return desc
}
