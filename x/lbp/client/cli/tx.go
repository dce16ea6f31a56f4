package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// GetTxCmd returns the transaction commands for the lbp module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "lbp",
		Short:                      "LBP module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreatePool(),
		CmdScheduleWeightUpdate(),
		CmdSetSwapEnabled(),
		CmdPokeWeights(),
		CmdJoinPool(),
		CmdExitPool(),
		CmdSwap(),
	)

	return cmd
}

// CmdCreatePool returns the command to create a liquidity bootstrapping pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [assets] [weights] [swap-fee]",
		Short: "Create a liquidity bootstrapping pool",
		Long: `Create a liquidity bootstrapping pool.

Assets and weights are comma-separated lists of equal length. Weights are
18-decimal fractions that must sum to exactly 1.

Example:
  lbpd tx lbp create-pool unova,uusdc 0.96,0.04 0.003 --from launcher`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			enabled, err := cmd.Flags().GetBool("swap-enabled")
			if err != nil {
				return err
			}

			msg := &types.MsgCreatePool{
				Owner:       clientCtx.GetFromAddress().String(),
				Assets:      strings.Split(args[0], ","),
				Weights:     strings.Split(args[1], ","),
				SwapFee:     args[2],
				SwapEnabled: enabled,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool("swap-enabled", false, "open the pool for swapping at creation")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdScheduleWeightUpdate returns the command to start a gradual weight update
func CmdScheduleWeightUpdate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule-weight-update [pool-id] [start-time] [end-time] [end-weights]",
		Short: "Start a gradual linear weight transition",
		Long: `Start a gradual linear weight transition.

Times are unix seconds; a start time in the past is clamped to the current
block time. End weights are comma-separated 18-decimal fractions summing to 1.

Example:
  lbpd tx lbp schedule-weight-update lbp-a1b2c3d4 1700000000 1700604800 0.5,0.5 --from launcher`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			startTime, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid start time: %v", err)
			}
			endTime, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid end time: %v", err)
			}

			msg := &types.MsgScheduleWeightUpdate{
				Owner:      clientCtx.GetFromAddress().String(),
				PoolID:     args[0],
				StartTime:  startTime,
				EndTime:    endTime,
				EndWeights: strings.Split(args[3], ","),
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetSwapEnabled returns the command to toggle the swap gate
func CmdSetSwapEnabled() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-swap-enabled [pool-id] [true|false]",
		Short: "Enable or disable swapping on a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid enabled flag: %v", err)
			}

			msg := &types.MsgSetSwapEnabled{
				Owner:   clientCtx.GetFromAddress().String(),
				PoolID:  args[0],
				Enabled: enabled,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPokeWeights returns the command to fold a completed weight schedule
func CmdPokeWeights() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poke-weights [pool-id]",
		Short: "Fold a completed weight schedule into fixed weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgPokeWeights{
				Sender: clientCtx.GetFromAddress().String(),
				PoolID: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdJoinPool returns the command to deposit assets for pool shares
func CmdJoinPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join-pool [pool-id] [amounts]",
		Short: "Deposit all pool assets proportionally for shares",
		Long: `Deposit all pool assets proportionally for shares.

Amounts are comma-separated integer token amounts, one per pool asset in
pool order.

Example:
  lbpd tx lbp join-pool lbp-a1b2c3d4 960000000,40000000 --from provider`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgJoinPool{
				Sender:  clientCtx.GetFromAddress().String(),
				PoolID:  args[0],
				Amounts: strings.Split(args[1], ","),
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExitPool returns the command to redeem pool shares
func CmdExitPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exit-pool [pool-id] [shares]",
		Short: "Burn shares for a proportional share of pool assets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgExitPool{
				Sender: clientCtx.GetFromAddress().String(),
				PoolID: args[0],
				Shares: args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns the command to swap against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [denom-in] [denom-out] [amount-in]",
		Short: "Swap one pool asset for another at the current weights",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minOut, err := cmd.Flags().GetString("min-amount-out")
			if err != nil {
				return err
			}

			msg := &types.MsgSwap{
				Trader:       clientCtx.GetFromAddress().String(),
				PoolID:       args[0],
				DenomIn:      args[1],
				DenomOut:     args[2],
				AmountIn:     args[3],
				MinAmountOut: minOut,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String("min-amount-out", "", "reject the swap below this output amount")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
