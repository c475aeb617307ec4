package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// Load подгружает переменные окружения из .env.
// Отсутствующий файл не считается ошибкой.
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
}

type StatsConfig interface {
	WindowSize() int
}

type NodeConfig interface {
	FrameInterval() time.Duration
}
