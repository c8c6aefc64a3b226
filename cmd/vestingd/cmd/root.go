package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TheSnakeWitcher/vesting-manager/client"
)

const (
	FlagNode      = "node"
	FlagAdminNode = "admin-node"
	FlagConfig    = "config"

	envPrefix = "VESTINGD"
)

// NewRootCmd builds the vestingd command tree. Flags can also be set through VESTINGD_* variables.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "vestingd",
		Short:         "Vesting period registry and release engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(FlagNode, "http://localhost:8080", "Public API address of the node")
	rootCmd.PersistentFlags().String(FlagAdminNode, "http://localhost:9200", "Admin API address of the node")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Node config file (defaults to $VESTING_CONFIG_PATH or config.yaml)")
	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		InitCommand(v),
		StartCommand(v),
		StatusCommand(v),
		ParamsCommand(v),
		PeriodCommand(v),
		PeriodsCommand(v),
		ReleasableCommand(v),
		BalanceCommand(v),
		EscrowCommand(v),
		CreatePeriodCommand(v),
		ReleaseCommand(v),
		SetFeeTokenCommand(v),
		SetFeeAmountCommand(v),
		FaucetCommand(v),
		ExportGenesisCommand(v),
	)
	return rootCmd
}

func newClient(v *viper.Viper) *client.Client {
	return client.NewClient(v.GetString(FlagNode), client.WithAdminUrl(v.GetString(FlagAdminNode)))
}

func printJSON(cmd *cobra.Command, value any) error {
	bz, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
