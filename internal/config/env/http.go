package env

import (
	"os"
	"roguelike_slots/internal/config"
)

const (
	httpAddressEnvName = "HTTP_ADDRESS"
	defaultHTTPAddress = ":8080"
)

type httpConfig struct {
	address string
}

// NewHTTPConfig - адрес из окружения, затем из YAML, затем по умолчанию
func NewHTTPConfig(path string) (config.HTTPConfig, error) {
	file, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return &httpConfig{
		address: pick(os.Getenv(httpAddressEnvName), file.HTTP.Address, defaultHTTPAddress),
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
