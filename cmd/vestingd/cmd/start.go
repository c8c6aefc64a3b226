package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TheSnakeWitcher/vesting-manager/apiconfig"
	"github.com/TheSnakeWitcher/vesting-manager/logging"
)

const shutdownTimeout = 10 * time.Second

func configPath(v *viper.Viper) string {
	if path := v.GetString(FlagConfig); path != "" {
		return path
	}
	return apiconfig.GetConfigPath()
}

func StartCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the vesting node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := apiconfig.LoadConfigManager(configPath(v))
			if err != nil {
				return err
			}
			config := manager.GetConfig()
			logging.Setup(os.Stdout, config.Logging.Level)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			n, err := startNode(ctx, *config)
			if err != nil {
				logging.Error("Failed to start node", logging.App, "error", err)
				return err
			}

			<-ctx.Done()
			logging.Info("Shutting down", logging.App)
			stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stopCancel()
			n.stop(stopCtx)
			return nil
		},
	}
}
