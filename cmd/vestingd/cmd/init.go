package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TheSnakeWitcher/vesting-manager/apiconfig"
	"github.com/TheSnakeWitcher/vesting-manager/app"
)

const (
	FlagChainId     = "chain-id"
	FlagAdmin       = "admin"
	FlagDataDir     = "data-dir"
	FlagGenesisFile = "genesis-file"
	FlagWebhookUrl  = "webhook-url"
)

// InitCommand writes a node config and, when --genesis-file is set, a default genesis next to it.
func InitCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the node config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(v)
			manager, err := apiconfig.LoadConfigManager(path)
			if err != nil {
				return err
			}

			chain := manager.GetConfig().Chain
			if cmd.Flags().Changed(FlagChainId) {
				chain.ChainId, _ = cmd.Flags().GetString(FlagChainId)
			}
			if cmd.Flags().Changed(FlagAdmin) {
				chain.Admin, _ = cmd.Flags().GetString(FlagAdmin)
			}
			if cmd.Flags().Changed(FlagDataDir) {
				chain.DataDir, _ = cmd.Flags().GetString(FlagDataDir)
			}
			if cmd.Flags().Changed(FlagGenesisFile) {
				chain.GenesisFile, _ = cmd.Flags().GetString(FlagGenesisFile)
				if err := writeDefaultGenesis(chain.GenesisFile); err != nil {
					return err
				}
			}
			if err := manager.SetChain(chain); err != nil {
				return err
			}
			if cmd.Flags().Changed(FlagWebhookUrl) {
				url, _ := cmd.Flags().GetString(FlagWebhookUrl)
				if err := manager.SetWebhookUrl(url); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return err
		},
	}
	cmd.Flags().String(FlagChainId, "", "Chain id")
	cmd.Flags().String(FlagAdmin, "", "Fee administrator address")
	cmd.Flags().String(FlagDataDir, "", "State directory, in-memory state when empty")
	cmd.Flags().String(FlagGenesisFile, "", "Write a default genesis to this path and use it")
	cmd.Flags().String(FlagWebhookUrl, "", "Endpoint notified of every created period")
	return cmd
}

// writeDefaultGenesis keeps an existing file.
func writeDefaultGenesis(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	bz, err := json.MarshalIndent(app.DefaultGenesis(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, bz, 0o644); err != nil {
		return fmt.Errorf("failed to write genesis file: %w", err)
	}
	return nil
}
