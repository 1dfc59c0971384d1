package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"luna/internal/lexer"
	"luna/internal/source"
)

const projectFileName = "luna.toml"

type projectConfig struct {
	Syntax syntaxConfig `toml:"syntax"`
	Source sourceConfig `toml:"source"`
	Check  checkConfig  `toml:"check"`
	REPL   replConfig   `toml:"repl"`
}

type syntaxConfig struct {
	Booleans string `toml:"booleans"`
}

type sourceConfig struct {
	Normalize string `toml:"normalize"`
}

type checkConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

type replConfig struct {
	History string `toml:"history"`
}

func defaultProjectConfig() projectConfig {
	return projectConfig{
		Check: checkConfig{Cache: true},
	}
}

func findLunaToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, projectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// resolveProjectConfig loads explicit when set, otherwise the nearest
// luna.toml above startDir. Without either the defaults are returned.
func resolveProjectConfig(explicit, startDir string) (projectConfig, string, error) {
	path := explicit
	if path == "" {
		found, ok, err := findLunaToml(startDir)
		if err != nil {
			return projectConfig{}, "", err
		}
		if !ok {
			return defaultProjectConfig(), "", nil
		}
		path = found
	}
	cfg, err := loadProjectConfig(path)
	if err != nil {
		return projectConfig{}, "", err
	}
	return cfg, path, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	cfg := defaultProjectConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return projectConfig{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0].String())
	}
	if meta.IsDefined("syntax", "booleans") {
		if _, err := lexer.ParseBoolSyntax(cfg.Syntax.Booleans); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [syntax].booleans: %w", path, err)
		}
	}
	if meta.IsDefined("source", "normalize") {
		if _, err := parseNormalization(cfg.Source.Normalize); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [source].normalize: %w", path, err)
		}
	}
	if cfg.Check.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	if h := strings.TrimSpace(cfg.REPL.History); h != "" && !filepath.IsAbs(h) {
		// относительный путь считается от каталога с luna.toml
		cfg.REPL.History = filepath.Join(filepath.Dir(path), filepath.FromSlash(h))
	}
	return cfg, nil
}

func parseNormalization(s string) (source.Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return source.NormalizeNone, nil
	case "nfc":
		return source.NormalizeNFC, nil
	}
	return 0, fmt.Errorf("unknown normalization %q (expected none|nfc)", s)
}
