package env

import (
	"fmt"
	"os"
	"roguelike_slots/internal/config"
	"time"
)

const (
	frameIntervalEnvName = "FRAME_INTERVAL"
	defaultFrameInterval = "16ms"
)

type nodeConfig struct {
	frameInterval time.Duration
}

func NewNodeConfig(path string) (config.NodeConfig, error) {
	file, err := readFile(path)
	if err != nil {
		return nil, err
	}

	raw := pick(os.Getenv(frameIntervalEnvName), file.Node.FrameInterval, defaultFrameInterval)
	frameInterval, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid frame interval: %w", err)
	}
	if frameInterval <= 0 {
		return nil, fmt.Errorf("frame interval must be positive, got %s", frameInterval)
	}

	return &nodeConfig{
		frameInterval: frameInterval,
	}, nil
}

func (cfg *nodeConfig) FrameInterval() time.Duration {
	return cfg.frameInterval
}
