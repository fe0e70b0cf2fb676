package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"bigcalc/internal/bigint"
)

// defaults when no bigcalc.toml is found and no flag is given.
const (
	defaultBase         = 10
	defaultPrompt       = ">> "
	defaultHistoryLimit = 500
)

type calcConfig struct {
	Calc    calcSection    `toml:"calc"`
	Repl    replSection    `toml:"repl"`
	History historySection `toml:"history"`
}

type calcSection struct {
	Base int `toml:"base"`
}

type replSection struct {
	Prompt string `toml:"prompt"`
}

type historySection struct {
	Enabled *bool `toml:"enabled"`
	Limit   int   `toml:"limit"`
}

// findBigcalcToml walks from startDir toward the filesystem root looking for
// a bigcalc.toml, the same way the toolchain locates project manifests.
func findBigcalcToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "bigcalc.toml")
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

// loadConfig reads the nearest bigcalc.toml. Every section is optional; a
// missing file yields pure defaults.
func loadConfig(startDir string) (calcConfig, error) {
	cfg := calcConfig{
		Calc:    calcSection{Base: defaultBase},
		Repl:    replSection{Prompt: defaultPrompt},
		History: historySection{Limit: defaultHistoryLimit},
	}
	path, ok, err := findBigcalcToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return calcConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("calc", "base") {
		if err := bigint.CheckBase(cfg.Calc.Base); err != nil {
			return calcConfig{}, fmt.Errorf("%s: [calc].base: %w", path, err)
		}
	}
	if cfg.Repl.Prompt == "" {
		cfg.Repl.Prompt = defaultPrompt
	}
	return cfg, nil
}

func (c calcConfig) historyEnabled() bool {
	if c.History.Enabled == nil {
		return true
	}
	return *c.History.Enabled
}

// effectiveBase resolves the session base: the --base flag wins over the
// config file, which wins over the default.
func effectiveBase(cmd *cobra.Command, cfg calcConfig) (int, error) {
	base := cfg.Calc.Base
	if cmd.Root().PersistentFlags().Changed("base") {
		base, _ = cmd.Root().PersistentFlags().GetInt("base")
	}
	if err := bigint.CheckBase(base); err != nil {
		return 0, err
	}
	return base, nil
}
