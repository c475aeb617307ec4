package env

import (
	"fmt"
	"os"
	"roguelike_slots/internal/config"
	"strconv"
)

const (
	statsWindowEnvName     = "STATS_WINDOW_SIZE"
	defaultStatsWindowSize   = 500
)

type statsConfig struct {
	windowSize int
}

func NewStatsConfig(path string) (config.StatsConfig, error) {
	file, err := readFile(path)
	if err != nil {
		return nil, err
	}

	windowSize := defaultStatsWindowSize
	if file.Stats.WindowSize != 0 {
		windowSize = file.Stats.WindowSize
	}

	if raw := os.Getenv(statsWindowEnvName); raw != "" {
		windowSize, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid stats window size: %w", err)
		}
	}

	if windowSize <= 0 {
		return nil, fmt.Errorf("stats window size must be positive, got %d", windowSize)
	}

	return &statsConfig{
		windowSize: windowSize,
	}, nil
}

func (cfg *statsConfig) WindowSize() int {
	return cfg.windowSize
}
