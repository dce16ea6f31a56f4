package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgCreatePool           = "create_pool"
	TypeMsgScheduleWeightUpdate = "schedule_weight_update"
	TypeMsgSetSwapEnabled       = "set_swap_enabled"
	TypeMsgPokeWeights          = "poke_weights"
	TypeMsgJoinPool             = "join_pool"
	TypeMsgExitPool             = "exit_pool"
	TypeMsgSwap                 = "swap"
)

// MsgCreatePool creates a new liquidity bootstrapping pool. Weights and
// the swap fee are 18-decimal fraction strings ("0.8", "0.003").
type MsgCreatePool struct {
	Owner       string   `json:"owner"`
	PoolID      string   `json:"pool_id,omitempty"` // generated when empty
	Assets      []string `json:"assets"`
	Weights     []string `json:"weights"`
	SwapFee     string   `json:"swap_fee"`
	SwapEnabled bool     `json:"swap_enabled"`
}

// Route implements sdk.Msg
func (msg MsgCreatePool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreatePool) Type() string { return TypeMsgCreatePool }

// ValidateBasic implements sdk.Msg
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return err
	}
	if len(msg.Assets) < MinPoolAssets {
		return ErrTooFewAssets
	}
	if len(msg.Assets) > MaxPoolAssets {
		return ErrTooManyAssets
	}
	if len(msg.Weights) != len(msg.Assets) {
		return ErrLengthMismatch
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgCreatePool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements proto.Message
func (msg MsgCreatePool) String() string {
	return fmt.Sprintf("MsgCreatePool{Owner: %s, Assets: %v}", msg.Owner, msg.Assets)
}

// MsgCreatePoolResponse is the CreatePool response
type MsgCreatePoolResponse struct {
	PoolID         string `json:"pool_id"`
	MaxWeightIndex int    `json:"max_weight_index"`
}

// MsgScheduleWeightUpdate starts a gradual linear weight transition.
// Times are unix seconds; EndWeights are 18-decimal fraction strings.
type MsgScheduleWeightUpdate struct {
	Owner      string   `json:"owner"`
	PoolID     string   `json:"pool_id"`
	StartTime  int64    `json:"start_time"`
	EndTime    int64    `json:"end_time"`
	EndWeights []string `json:"end_weights"`
}

// Route implements sdk.Msg
func (msg MsgScheduleWeightUpdate) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgScheduleWeightUpdate) Type() string { return TypeMsgScheduleWeightUpdate }

// ValidateBasic implements sdk.Msg
func (msg MsgScheduleWeightUpdate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if len(msg.EndWeights) == 0 {
		return ErrInvalidWeightVector
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgScheduleWeightUpdate) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgScheduleWeightUpdate) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgScheduleWeightUpdate) Reset() { *msg = MsgScheduleWeightUpdate{} }

// String implements proto.Message
func (msg MsgScheduleWeightUpdate) String() string {
	return fmt.Sprintf("MsgScheduleWeightUpdate{Pool: %s, Start: %d, End: %d}", msg.PoolID, msg.StartTime, msg.EndTime)
}

// MsgScheduleWeightUpdateResponse is the ScheduleWeightUpdate response
type MsgScheduleWeightUpdateResponse struct {
	EffectiveStartTime int64    `json:"effective_start_time"`
	EndTime            int64    `json:"end_time"`
	StartWeights       []string `json:"start_weights"`
}

// MsgSetSwapEnabled toggles the swap gate of a pool.
type MsgSetSwapEnabled struct {
	Owner   string `json:"owner"`
	PoolID  string `json:"pool_id"`
	Enabled bool   `json:"enabled"`
}

// Route implements sdk.Msg
func (msg MsgSetSwapEnabled) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgSetSwapEnabled) Type() string { return TypeMsgSetSwapEnabled }

// ValidateBasic implements sdk.Msg
func (msg MsgSetSwapEnabled) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgSetSwapEnabled) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgSetSwapEnabled) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSetSwapEnabled) Reset() { *msg = MsgSetSwapEnabled{} }

// String implements proto.Message
func (msg MsgSetSwapEnabled) String() string {
	return fmt.Sprintf("MsgSetSwapEnabled{Pool: %s, Enabled: %t}", msg.PoolID, msg.Enabled)
}

// MsgSetSwapEnabledResponse is the SetSwapEnabled response
type MsgSetSwapEnabledResponse struct {
	Enabled bool `json:"enabled"`
}

// MsgPokeWeights folds a completed schedule into fixed weights.
// Callable by anyone; a no-op when there is nothing to fold.
type MsgPokeWeights struct {
	Sender string `json:"sender"`
	PoolID string `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgPokeWeights) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgPokeWeights) Type() string { return TypeMsgPokeWeights }

// ValidateBasic implements sdk.Msg
func (msg MsgPokeWeights) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgPokeWeights) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgPokeWeights) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgPokeWeights) Reset() { *msg = MsgPokeWeights{} }

// String implements proto.Message
func (msg MsgPokeWeights) String() string {
	return fmt.Sprintf("MsgPokeWeights{Pool: %s}", msg.PoolID)
}

// MsgPokeWeightsResponse is the PokeWeights response
type MsgPokeWeightsResponse struct {
	Folded bool `json:"folded"`
}

// MsgJoinPool deposits all pool assets proportionally for shares.
type MsgJoinPool struct {
	Sender string `json:"sender"`
	PoolID string `json:"pool_id"`
	// Amounts are integer token amounts, one per pool asset in order.
	Amounts []string `json:"amounts"`
}

// Route implements sdk.Msg
func (msg MsgJoinPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgJoinPool) Type() string { return TypeMsgJoinPool }

// ValidateBasic implements sdk.Msg
func (msg MsgJoinPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if len(msg.Amounts) == 0 {
		return ErrZeroAmount
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgJoinPool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgJoinPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgJoinPool) Reset() { *msg = MsgJoinPool{} }

// String implements proto.Message
func (msg MsgJoinPool) String() string {
	return fmt.Sprintf("MsgJoinPool{Sender: %s, Pool: %s}", msg.Sender, msg.PoolID)
}

// MsgJoinPoolResponse is the JoinPool response
type MsgJoinPoolResponse struct {
	SharesMinted string `json:"shares_minted"`
}

// MsgExitPool burns shares for a proportional share of pool assets.
type MsgExitPool struct {
	Sender string `json:"sender"`
	PoolID string `json:"pool_id"`
	Shares string `json:"shares"`
}

// Route implements sdk.Msg
func (msg MsgExitPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgExitPool) Type() string { return TypeMsgExitPool }

// ValidateBasic implements sdk.Msg
func (msg MsgExitPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgExitPool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgExitPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgExitPool) Reset() { *msg = MsgExitPool{} }

// String implements proto.Message
func (msg MsgExitPool) String() string {
	return fmt.Sprintf("MsgExitPool{Sender: %s, Pool: %s, Shares: %s}", msg.Sender, msg.PoolID, msg.Shares)
}

// MsgExitPoolResponse is the ExitPool response
type MsgExitPoolResponse struct {
	AmountsOut []string `json:"amounts_out"`
}

// MsgSwap trades one pool asset for another at the current weights.
type MsgSwap struct {
	Trader       string `json:"trader"`
	PoolID       string `json:"pool_id"`
	DenomIn      string `json:"denom_in"`
	DenomOut     string `json:"denom_out"`
	AmountIn     string `json:"amount_in"`
	MinAmountOut string `json:"min_amount_out,omitempty"`
}

// Route implements sdk.Msg
func (msg MsgSwap) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgSwap) Type() string { return TypeMsgSwap }

// ValidateBasic implements sdk.Msg
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if msg.DenomIn == msg.DenomOut {
		return ErrSameAsset
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Trader)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgSwap) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSwap) Reset() { *msg = MsgSwap{} }

// String implements proto.Message
func (msg MsgSwap) String() string {
	return fmt.Sprintf("MsgSwap{Pool: %s, %s -> %s, AmountIn: %s}", msg.PoolID, msg.DenomIn, msg.DenomOut, msg.AmountIn)
}

// MsgSwapResponse is the Swap response
type MsgSwapResponse struct {
	AmountOut string `json:"amount_out"`
	FeePaid   string `json:"fee_paid"`
}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgScheduleWeightUpdate{}
	_ sdk.Msg = &MsgSetSwapEnabled{}
	_ sdk.Msg = &MsgPokeWeights{}
	_ sdk.Msg = &MsgJoinPool{}
	_ sdk.Msg = &MsgExitPool{}
	_ sdk.Msg = &MsgSwap{}
)
