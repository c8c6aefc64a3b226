package cmd

import (
	"errors"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TheSnakeWitcher/vesting-manager/internal/server/public"
)

const (
	FlagCycleAmount = "cycle-amount"
	FlagCycleNumber = "cycle-number"
	FlagAmount      = "amount"
	FlagEndTime     = "end-time"
	FlagAuthority   = "authority"
)

func CreatePeriodCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-period <creator> <token> <cycle-duration-seconds> <start-unix-time>",
		Short: "Escrow tokens into a new vesting period",
		Long: `Escrow tokens into a new vesting period.

The schedule is given either as --cycle-amount and --cycle-number, or as
--amount and --end-time, in which case the node rounds both to whole cycles.

Example:
  vestingd create-period cosmos1... uvest 300 1700000060 \
    --beneficiary cosmos1... --beneficiary cosmos1... \
    --cycle-amount 100 --cycle-number 3`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := createPeriodRequest(cmd, args)
			if err != nil {
				return err
			}
			res, err := newClient(v).CreatePeriod(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().StringSlice(FlagBeneficiary, nil, "Beneficiary address, repeat for several")
	cmd.Flags().String(FlagCycleAmount, "", "Amount released per cycle")
	cmd.Flags().Uint64(FlagCycleNumber, 0, "Number of cycles")
	cmd.Flags().String(FlagAmount, "", "Total amount to spread between start and end time")
	cmd.Flags().Int64(FlagEndTime, 0, "Unix time the schedule should end at")
	cmd.MarkFlagRequired(FlagBeneficiary)
	cmd.MarkFlagsMutuallyExclusive(FlagCycleAmount, FlagAmount)
	cmd.MarkFlagsRequiredTogether(FlagAmount, FlagEndTime)
	cmd.MarkFlagsRequiredTogether(FlagCycleAmount, FlagCycleNumber)
	return cmd
}

func createPeriodRequest(cmd *cobra.Command, args []string) (public.CreatePeriodRequest, error) {
	var cycleDuration uint64
	if _, err := fmt.Sscan(args[2], &cycleDuration); err != nil {
		return public.CreatePeriodRequest{}, fmt.Errorf("invalid cycle duration %q", args[2])
	}
	var startTime int64
	if _, err := fmt.Sscan(args[3], &startTime); err != nil {
		return public.CreatePeriodRequest{}, fmt.Errorf("invalid start time %q", args[3])
	}

	beneficiaries, _ := cmd.Flags().GetStringSlice(FlagBeneficiary)
	req := public.CreatePeriodRequest{
		Creator:       args[0],
		Token:         args[1],
		Beneficiaries: beneficiaries,
		CycleDuration: cycleDuration,
		StartTime:     startTime,
	}

	if raw, _ := cmd.Flags().GetString(FlagCycleAmount); raw != "" {
		amount, ok := math.NewIntFromString(raw)
		if !ok {
			return public.CreatePeriodRequest{}, fmt.Errorf("invalid cycle amount %q", raw)
		}
		req.CycleAmount = &amount
		req.CycleNumber, _ = cmd.Flags().GetUint64(FlagCycleNumber)
		return req, nil
	}
	if raw, _ := cmd.Flags().GetString(FlagAmount); raw != "" {
		amount, ok := math.NewIntFromString(raw)
		if !ok {
			return public.CreatePeriodRequest{}, fmt.Errorf("invalid amount %q", raw)
		}
		req.Amount = &amount
		req.EndTime, _ = cmd.Flags().GetInt64(FlagEndTime)
		return req, nil
	}
	return public.CreatePeriodRequest{}, errors.New("either --cycle-amount or --amount is required")
}

func ReleaseCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "release <id> <caller>",
		Short: "Pay out every cycle of the period that has come due",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePeriodId(args[0])
			if err != nil {
				return err
			}
			res, err := newClient(v).Release(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}
