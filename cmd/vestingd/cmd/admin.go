package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func SetFeeTokenCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-fee-token <denom>",
		Short: "Change the denom the creation fee is charged in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, _ := cmd.Flags().GetString(FlagAuthority)
			res, err := newClient(v).SetFeeToken(cmd.Context(), authority, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().String(FlagAuthority, "", "Signing authority, the node's admin when empty")
	return cmd
}

func SetFeeAmountCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-fee-amount <amount>",
		Short: "Change the creation fee amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid fee amount %q", args[0])
			}
			authority, _ := cmd.Flags().GetString(FlagAuthority)
			res, err := newClient(v).SetFeeAmount(cmd.Context(), authority, amount)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().String(FlagAuthority, "", "Signing authority, the node's admin when empty")
	return cmd
}

func FaucetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "faucet <recipient> <coins>",
		Short: "Mint test tokens to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(v).Faucet(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func ExportGenesisCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "export-genesis",
		Short: "Print the node's current state as a genesis document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			genesis, err := newClient(v).ExportGenesis(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, genesis)
		},
	}
}
