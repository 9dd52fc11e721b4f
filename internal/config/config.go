package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/mitchellh/mapstructure"
)

const FileName = "config.json"

type Config struct {
	LogLevel  string
	LogFormat string
	// Hard cap on pivots and II increases per solve, zero means unlimited
	IterationLimit int
	// Dump the tableau after every solver step to stderr
	DumpTableau bool
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// ExecutablePath returns the path of the config file placed next to the running executable
func ExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot determine executable path: %w", err)
	}
	return path.Join(path.Dir(execPath), FileName), nil
}

// Load reads the configuration at configPath on top of the defaults. A missing file yields the defaults
func Load(configPath string) (Config, error) {
	config := Default()

	bytes, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return Config{}, err
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("cannot read %v: %w", configPath, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(configJson); err != nil {
		return Config{}, fmt.Errorf("invalid %v: %w", configPath, err)
	}

	if config.IterationLimit < 0 {
		return Config{}, fmt.Errorf("iteration limit must not be negative: %v", config.IterationLimit)
	}
	return config, nil
}
