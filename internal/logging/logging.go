package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/limaJavier/simplexscheduling/internal/config"
)

const (
	TextFormat = "text"
	JsonFormat = "json"
)

// New builds the logger described by cfg. It writes to stderr because stdout carries the schedule
func New(cfg config.Config) (*slog.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds the logger described by cfg on top of w. Unknown levels and formats are errors
func NewWithWriter(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.LogFormat) {
	case TextFormat, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case JsonFormat:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format \"%v\", expected \"%v\" or \"%v\"", cfg.LogFormat, TextFormat, JsonFormat)
}

// ParseLevel accepts slog's level names with optional offsets ("debug", "WARN", "info+2"). Empty means info;
// "warning" is kept as an alias of "warn"
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	switch strings.ToLower(s) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level \"%v\": %w", s, err)
	}
	return level, nil
}
