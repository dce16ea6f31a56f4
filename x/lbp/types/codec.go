package types

import (
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterInterfaces registers the module's message types
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgScheduleWeightUpdate{},
		&MsgSetSwapEnabled{},
		&MsgPokeWeights{},
		&MsgJoinPool{},
		&MsgExitPool{},
		&MsgSwap{},
	)
}

// XXX_MessageName returns the message type URL for MsgCreatePool
func (msg *MsgCreatePool) XXX_MessageName() string {
	return "lbpchain.lbp.v1.MsgCreatePool"
}

// XXX_MessageName returns the message type URL for MsgScheduleWeightUpdate
func (msg *MsgScheduleWeightUpdate) XXX_MessageName() string {
	return "lbpchain.lbp.v1.MsgScheduleWeightUpdate"
}

// XXX_MessageName returns the message type URL for MsgSetSwapEnabled
func (msg *MsgSetSwapEnabled) XXX_MessageName() string {
	return "lbpchain.lbp.v1.MsgSetSwapEnabled"
}

// XXX_MessageName returns the message type URL for MsgPokeWeights
func (msg *MsgPokeWeights) XXX_MessageName() string {
	return "lbpchain.lbp.v1.MsgPokeWeights"
}

// XXX_MessageName returns the message type URL for MsgJoinPool
func (msg *MsgJoinPool) XXX_MessageName() string {
	return "lbpchain.lbp.v1.MsgJoinPool"
}

// XXX_MessageName returns the message type URL for MsgExitPool
func (msg *MsgExitPool) XXX_MessageName() string {
	return "lbpchain.lbp.v1.MsgExitPool"
}

// XXX_MessageName returns the message type URL for MsgSwap
func (msg *MsgSwap) XXX_MessageName() string {
	return "lbpchain.lbp.v1.MsgSwap"
}
