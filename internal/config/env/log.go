package env

import (
	"fmt"
	"os"
	"roguelike_slots/internal/config"
	"strings"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	defaultLogLevel = "info"
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

type logConfig struct {
	level string
}

func NewLogConfig(path string) (config.LogConfig, error) {
	file, err := readFile(path)
	if err != nil {
		return nil, err
	}

	level := strings.ToLower(pick(os.Getenv(logLevelEnvName), file.Log.Level, defaultLogLevel))
	if !logLevels[level] {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	return &logConfig{
		level: level,
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
