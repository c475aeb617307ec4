package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"roguelike_slots/internal/config"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider

	configPath string
	envPath    string
}

func NewApp(configPath, envPath string) *App {
	return &App{
		configPath: configPath,
		envPath:    envPath,
	}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.configPath)
}

// Run поднимает узел и HTTP сервер, блокируется до отмены ctx
func (s *App) Run(ctx context.Context) error {
	if err := config.Load(s.envPath); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	s.initServiceProvider()

	sp := s.ServiceProvider
	log := sp.Logger()
	defer func() {
		_ = log.Sync()
	}()

	r := sp.Router()

	n := sp.Node()
	n.Ready()
	go n.Run(ctx, sp.NodeCfg().FrameInterval())

	srv := &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
