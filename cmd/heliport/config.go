package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional heliport.toml defaults file. Any value a
// user passes explicitly on the command line always overrides it.
type fileConfig struct {
	ModelDir      string   `toml:"model_dir"`
	Threads       int      `toml:"threads"`
	BatchSize     int      `toml:"batch_size"`
	RelevantLangs []string `toml:"relevant_langs"`
}

// loadConfig looks for heliport.toml next to the running executable, then
// in the current directory. A missing file is not an error: it just means
// no defaults are applied.
func loadConfig() (fileConfig, error) {
	var cfg fileConfig

	candidates := []string{"heliport.toml"}
	if exe, err := os.Executable(); err == nil {
		candidates = append([]string{filepath.Join(filepath.Dir(exe), "heliport.toml")}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return cfg, nil
}

// resolveModelDir applies the documented discovery order: an explicit
// flag, else the config file, else a LanguageModels directory beside the
// executable, else ./LanguageModels.
func resolveModelDir(flagValue string, cfg fileConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.ModelDir != "" {
		return cfg.ModelDir
	}
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "LanguageModels")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "LanguageModels"
}
