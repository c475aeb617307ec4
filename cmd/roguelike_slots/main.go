package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"roguelike_slots/internal/app"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configFile string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "roguelike_slots",
	Short: "slot machine node with an HTTP host surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.NewApp(configFile, envFile).Run(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "config.yaml", "path to YAML config")
	rootCmd.Flags().StringVar(&envFile, "env", ".env", "path to .env file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("roguelike_slots: %v", err)
		os.Exit(1)
	}
}
