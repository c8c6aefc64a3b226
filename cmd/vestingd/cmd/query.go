package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TheSnakeWitcher/vesting-manager/logging"
)

const FlagBeneficiary = "beneficiary"

func StatusCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the node's chain id, height and admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := logging.WithNoopLogger(func() (any, error) {
				status, err := newClient(v).Status(cmd.Context())
				if err != nil {
					return nil, err
				}
				return nil, printJSON(cmd, status)
			})
			return err
		},
	}
}

func ParamsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "params",
		Aliases: []string{"fee"},
		Short:   "Show the creation fee token and amount",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := newClient(v).Params(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, params)
		},
	}
}

func PeriodCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "period <id>",
		Short: "Show one live vesting period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePeriodId(args[0])
			if err != nil {
				return err
			}
			period, err := newClient(v).Period(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, period)
		},
	}
}

func PeriodsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List live vesting periods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			beneficiary, err := cmd.Flags().GetString(FlagBeneficiary)
			if err != nil {
				return err
			}
			periods, err := newClient(v).Periods(cmd.Context(), beneficiary)
			if err != nil {
				return err
			}
			return printJSON(cmd, periods)
		},
	}
	cmd.Flags().String(FlagBeneficiary, "", "Only list periods paying this address")
	return cmd
}

func ReleasableCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "releasable <id>",
		Short: "Preview what a release of the period would pay now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePeriodId(args[0])
			if err != nil {
				return err
			}
			release, err := newClient(v).Releasable(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, release)
		},
	}
}

func BalanceCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the balances of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := newClient(v).Balances(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), balances.String())
			return err
		},
	}
}

func EscrowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "escrow <denom>",
		Short: "Compare the escrow balance of a denom with what live periods still owe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := newClient(v).Escrow(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, status)
		},
	}
}

func parsePeriodId(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid period id %q", raw)
	}
	return id, nil
}
