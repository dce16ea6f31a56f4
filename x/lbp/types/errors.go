package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrPoolNotFound        = errors.Register(ModuleName, 1, "pool not found")
	ErrPoolExists          = errors.Register(ModuleName, 2, "pool already exists")
	ErrTooManyAssets       = errors.Register(ModuleName, 3, "too many assets")
	ErrTooFewAssets        = errors.Register(ModuleName, 4, "too few assets")
	ErrInvalidWeightVector = errors.Register(ModuleName, 5, "invalid weight vector")
	ErrLengthMismatch      = errors.Register(ModuleName, 6, "weight vector length does not match asset count")
	ErrUnknownAsset        = errors.Register(ModuleName, 7, "asset is not a pool member")
	ErrNotOwner            = errors.Register(ModuleName, 8, "caller is not the pool owner")
	ErrInvalidPoolID       = errors.Register(ModuleName, 9, "invalid pool id")

	// Schedule errors
	ErrScheduleTimeTravel = errors.Register(ModuleName, 10, "end time is not after the current block time")
	ErrWindowTooShort     = errors.Register(ModuleName, 11, "weight change window below minimum duration")

	// Trading errors
	ErrSwapsDisabled      = errors.Register(ModuleName, 20, "swaps are disabled for this pool")
	ErrInvalidSwapFee     = errors.Register(ModuleName, 21, "swap fee outside allowed bounds")
	ErrZeroAmount         = errors.Register(ModuleName, 22, "amount must be positive")
	ErrSameAsset          = errors.Register(ModuleName, 23, "swap in and out assets must differ")
	ErrSlippageExceeded   = errors.Register(ModuleName, 24, "output below minimum requested")
	ErrInsufficientShares = errors.Register(ModuleName, 25, "insufficient pool shares")
	ErrEmptyPoolBalance   = errors.Register(ModuleName, 26, "pool has no balance for asset")
)
