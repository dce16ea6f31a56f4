package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// WeightPreview is a CLI-friendly weight interpolation preview
type WeightPreview struct {
	At        int64    `json:"at"`
	StartTime int64    `json:"start_time"`
	EndTime   int64    `json:"end_time"`
	Weights   []string `json:"weights"`
}

// GetQueryCmd returns the cli query commands for the lbp module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "lbp",
		Short:                      "Querying commands for the lbp module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryPool(),
		CmdQueryPools(),
		CmdQueryWeights(),
		CmdQuerySchedule(),
		CmdQuerySpotPrice(),
		CmdQueryShares(),
		CmdPreviewWeights(),
	)

	return cmd
}

// CmdQueryPool returns the command to query pool info
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query pool information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Pool query requires running node connection")
			fmt.Printf("Use REST API: GET /lbpchain/lbp/v1/pool/%s\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPools returns the command to query all pools
func CmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Pools query requires running node connection")
			fmt.Println("Use REST API: GET /lbpchain/lbp/v1/pools")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryWeights returns the command to query the current normalized weights
func CmdQueryWeights() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights [pool-id]",
		Short: "Query current normalized weights of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Weights query requires running node connection")
			fmt.Printf("Use REST API: GET /lbpchain/lbp/v1/pool/%s/weights\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySchedule returns the command to query the active weight schedule
func CmdQuerySchedule() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [pool-id]",
		Short: "Query the active weight update schedule of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Schedule query requires running node connection")
			fmt.Printf("Use REST API: GET /lbpchain/lbp/v1/pool/%s/schedule\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQuerySpotPrice returns the command to query a spot price
func CmdQuerySpotPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot-price [pool-id] [denom-in] [denom-out]",
		Short: "Query the fee-adjusted spot price between two pool assets",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Spot price query requires running node connection")
			fmt.Printf("Use REST API: GET /lbpchain/lbp/v1/pool/%s/spot-price/%s/%s\n", args[0], args[1], args[2])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryShares returns the command to query share balances
func CmdQueryShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shares [pool-id] [address]",
		Short: "Query an address's pool share balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Shares query requires running node connection")
			fmt.Printf("Use REST API: GET /lbpchain/lbp/v1/pool/%s/shares/%s\n", args[0], args[1])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdPreviewWeights returns the command to preview a weight schedule offline.
// The interpolation is the same one the chain applies, so launchers can audit
// a schedule before submitting it.
func CmdPreviewWeights() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview-weights [start-weights] [end-weights] [start-time] [end-time] [at]",
		Short: "Preview interpolated weights at a point in time",
		Long: `Preview interpolated weights at a point in time, computed locally.

Weights are comma-separated 18-decimal fractions summing to 1; times are
unix seconds.

Example:
  lbpd query lbp preview-weights 0.8,0.2 0.5,0.5 1700000000 1700604800 1700302400`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseWeightsArg(args[0])
			if err != nil {
				return fmt.Errorf("invalid start weights: %v", err)
			}
			end, err := parseWeightsArg(args[1])
			if err != nil {
				return fmt.Errorf("invalid end weights: %v", err)
			}
			if start.Len() != end.Len() {
				return types.ErrLengthMismatch
			}

			startTime, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid start time: %v", err)
			}
			endTime, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid end time: %v", err)
			}
			at, err := strconv.ParseInt(args[4], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid at time: %v", err)
			}
			if endTime <= startTime {
				return types.ErrWindowTooShort
			}

			preview := WeightPreview{
				At:        at,
				StartTime: startTime,
				EndTime:   endTime,
			}
			for i := 0; i < start.Len(); i++ {
				var w types.Weight
				switch {
				case at <= startTime:
					w = start.At(i)
				case at >= endTime:
					w = end.At(i)
				default:
					w = types.InterpolateWeight(start.At(i), end.At(i), endTime-startTime, at-startTime)
				}
				preview.Weights = append(preview.Weights, w.Dec().String())
			}

			output, _ := json.MarshalIndent(preview, "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func parseWeightsArg(arg string) (types.WeightVector, error) {
	return types.ParseWeightVector(strings.Split(arg, ","))
}
