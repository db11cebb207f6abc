package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.validate(); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Sites) != 1 {
		t.Fatal("Size mismatch: expected 1, found", len(cfg.Sites))
	}
	s := cfg.Sites[0]
	if s.Tag != "div" || s.Match != "Sint-Amandsberg" || cfg.Format != formatText {
		t.Error("Unexpected default site", s)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	testYaml := `
format: csv
sites:
  - name: defooz
    url: https://www.defooz.com/te-koop?view=list
    tag: p
    match: Sint-Amandsberg
    probe_url: https://www.defooz.com/page-not-found
  - url: https://example.com/listings
    tag: div
    match: Gentbrugge
`
	if err := os.WriteFile(path, []byte(testYaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Format != formatCSV || len(cfg.Sites) != 2 {
		t.Fatal("Unexpected config", cfg)
	}
	first := SiteConfig{
		Name:     "defooz",
		URL:      "https://www.defooz.com/te-koop?view=list",
		Tag:      "p",
		Match:    "Sint-Amandsberg",
		ProbeURL: "https://www.defooz.com/page-not-found",
	}
	if cfg.Sites[0] != first {
		t.Error("Different first site", cfg.Sites[0], first)
	}
	if cfg.Sites[1].Match != "Gentbrugge" {
		t.Error("Different second site", cfg.Sites[1])
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestConfigApply(t *testing.T) {
	cfg := defaultConfig()
	cfg.apply(overrides{Tag: "p", Match: "Gent"})

	s := cfg.Sites[0]
	if s.Tag != "p" || s.Match != "Gent" {
		t.Error("Overrides not applied", s)
	}
	if s.URL != defaultConfig().Sites[0].URL {
		t.Error("Empty override replaced the url", s.URL)
	}
}

func TestConfigApplyURLClearsName(t *testing.T) {
	cfg := defaultConfig()
	cfg.apply(overrides{URL: "https://example.com/listings"})

	s := cfg.Sites[0]
	if s.Name != "" || s.URL != "https://example.com/listings" {
		t.Error("Unexpected site after url override", s)
	}

	cfg = defaultConfig()
	cfg.apply(overrides{URL: cfg.Sites[0].URL})
	if cfg.Sites[0].Name != "defooz" {
		t.Error("Name cleared for an unchanged url", cfg.Sites[0].Name)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no sites", Config{Format: formatText}},
		{"bad format", Config{Format: "xml", Sites: defaultConfig().Sites}},
		{"no url", Config{Format: formatText, Sites: []SiteConfig{{Tag: "div", Match: "x"}}}},
		{"no tag", Config{Format: formatText, Sites: []SiteConfig{{URL: "http://x", Match: "x"}}}},
		{"no match", Config{Format: formatText, Sites: []SiteConfig{{URL: "http://x", Tag: "div"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.validate(); !errors.Is(err, errInvalidConfig) {
				t.Errorf("Expected errInvalidConfig, found %v", err)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("IMMOWATCH_MATCH=Oostakker\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("IMMOWATCH_MATCH", "")
	os.Unsetenv("IMMOWATCH_MATCH")

	if err := loadEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatal(err)
	}
	if o := envOverrides(); o.Match != "Oostakker" {
		t.Error("Expected match from .env, found", o.Match)
	}
}
