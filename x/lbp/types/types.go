package types

const (
	// ModuleName is the name of the lbp module
	ModuleName = "lbp"

	// StoreKey is the store key for the lbp module
	StoreKey = ModuleName
)

// Pool capacity bounds. The packed weight word holds four slots, so the
// asset count is hard-capped at four; a weighted pool needs at least two.
const (
	MinPoolAssets = 2
	MaxPoolAssets = 4
)
