package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

var errInvalidConfig = errors.New("invalid config")

type Config struct {
	Format string       `yaml:"format"`
	Sites  []SiteConfig `yaml:"sites"`
}

type SiteConfig struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Tag      string `yaml:"tag"`
	Match    string `yaml:"match"`
	ProbeURL string `yaml:"probe_url"`
}

func defaultConfig() *Config {
	return &Config{
		Format: formatText,
		Sites: []SiteConfig{
			{
				Name:  "defooz",
				URL:   "https://www.defooz.com/te-koop?price-min=&price-max=&reference=&view=list",
				Tag:   "div",
				Match: "Sint-Amandsberg",
			},
		},
	}
}

// loadConfig reads path if given, otherwise starts from the built-in site.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = formatText
	}

	return cfg, nil
}

// loadEnv reads the optional .env files into the process environment.
// A missing file is not an error.
func loadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// overrides replaces fields on every site; empty values leave the site alone.
type overrides struct {
	URL      string
	Tag      string
	Match    string
	ProbeURL string
}

func envOverrides() overrides {
	return overrides{
		URL:      os.Getenv("IMMOWATCH_URL"),
		Tag:      os.Getenv("IMMOWATCH_TAG"),
		Match:    os.Getenv("IMMOWATCH_MATCH"),
		ProbeURL: os.Getenv("IMMOWATCH_PROBE_URL"),
	}
}

func (c *Config) apply(o overrides) {
	for i := range c.Sites {
		s := &c.Sites[i]
		if o.URL != "" && o.URL != s.URL {
			// the configured name describes the old page
			s.Name = ""
			s.URL = o.URL
		}
		if o.Tag != "" {
			s.Tag = o.Tag
		}
		if o.Match != "" {
			s.Match = o.Match
		}
		if o.ProbeURL != "" {
			s.ProbeURL = o.ProbeURL
		}
	}
}

func (c *Config) validate() error {
	if c.Format != formatText && c.Format != formatCSV {
		return fmt.Errorf("%w: unknown format %q", errInvalidConfig, c.Format)
	}
	if len(c.Sites) == 0 {
		return fmt.Errorf("%w: no sites configured", errInvalidConfig)
	}
	for i, s := range c.Sites {
		switch {
		case s.URL == "":
			return fmt.Errorf("%w: site %d has no url", errInvalidConfig, i)
		case s.Tag == "":
			return fmt.Errorf("%w: site %d has no tag", errInvalidConfig, i)
		case s.Match == "":
			return fmt.Errorf("%w: site %d has no match", errInvalidConfig, i)
		}
	}
	return nil
}
