package types

import (
	"cosmossdk.io/math"
)

// Pool is the persisted state of a liquidity bootstrapping pool.
//
// FixedWeights is authoritative whenever no schedule is pending and is
// the start vector of whichever schedule is. StartTime == 0 is the idle
// sentinel: a schedule exists iff StartTime != 0, and whether it is
// already in flight is purely a function of the query time. A completed
// schedule is folded exactly once, by a mutating path, copying
// TargetWeights into FixedWeights and resetting the sentinel.
type Pool struct {
	PoolID string `json:"pool_id"`
	Owner  string `json:"owner"`
	// Assets is the ordered asset list fixed at creation; weight slot i
	// belongs to Assets[i].
	Assets  []string       `json:"assets"`
	SwapFee math.LegacyDec `json:"swap_fee"`

	FixedWeights  PackedWeights `json:"fixed_weights"`
	TargetWeights PackedWeights `json:"target_weights"`
	StartTime     int64         `json:"start_time"`
	EndTime       int64         `json:"end_time"`

	// MaxWeightIndex caches the index of the heaviest asset for fee
	// accounting. Correct only as of the last lifecycle recompute.
	MaxWeightIndex int `json:"max_weight_index"`

	SwapEnabled bool           `json:"swap_enabled"`
	TotalShares math.LegacyDec `json:"total_shares"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// NewPool builds a pool with the given fixed weights already validated.
func NewPool(poolID, owner string, assets []string, weights WeightVector, swapFee math.LegacyDec, swapEnabled bool, now int64) *Pool {
	return &Pool{
		PoolID:         poolID,
		Owner:          owner,
		Assets:         assets,
		SwapFee:        swapFee,
		FixedWeights:   PackWeights(weights),
		MaxWeightIndex: weights.MaxIndex(),
		SwapEnabled:    swapEnabled,
		TotalShares:    math.LegacyZeroDec(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AssetCount returns the number of pool assets.
func (p *Pool) AssetCount() int { return len(p.Assets) }

// AssetIndex resolves a denom to its weight slot.
func (p *Pool) AssetIndex(denom string) (int, bool) {
	for i, a := range p.Assets {
		if a == denom {
			return i, true
		}
	}
	return 0, false
}

// ScheduleActive reports whether a gradual update is pending or in flight.
func (p *Pool) ScheduleActive() bool { return p.StartTime != 0 }

// CurrentWeights computes the full weight vector at the given time
// without mutating anything. Before the schedule starts (or with no
// schedule) it is the fixed vector; at or past the end it is the target
// vector, whether or not the schedule has been folded yet; in between it
// is the elementwise linear interpolation. The result always agrees with
// what a subsequent fold would persist.
func (p *Pool) CurrentWeights(now int64) WeightVector {
	n := p.AssetCount()
	if !p.ScheduleActive() || now <= p.StartTime {
		return p.FixedWeights.Vector(n)
	}
	if now >= p.EndTime {
		return p.TargetWeights.Vector(n)
	}

	total := p.EndTime - p.StartTime
	elapsed := now - p.StartTime
	var v WeightVector
	v.count = n
	for i := 0; i < n; i++ {
		v.weights[i] = InterpolateWeight(p.FixedWeights.At(i), p.TargetWeights.At(i), total, elapsed)
	}
	return v
}

// CurrentWeight computes the weight of a single slot at the given time.
// Bit-identical to indexing into CurrentWeights.
func (p *Pool) CurrentWeight(i int, now int64) Weight {
	if !p.ScheduleActive() || now <= p.StartTime {
		return p.FixedWeights.At(i)
	}
	if now >= p.EndTime {
		return p.TargetWeights.At(i)
	}
	return InterpolateWeight(p.FixedWeights.At(i), p.TargetWeights.At(i), p.EndTime-p.StartTime, now-p.StartTime)
}

// FoldCompleted folds a finished schedule into the fixed weights and
// resets to idle. Reports whether a fold happened; a no-op when idle or
// still in flight, so it is safe to call from any mutating path any
// number of times. Persistence is the caller's job.
func (p *Pool) FoldCompleted(now int64) bool {
	if !p.ScheduleActive() || now < p.EndTime {
		return false
	}
	p.FixedWeights = p.TargetWeights
	p.StartTime = 0
	p.EndTime = 0
	p.TargetWeights = PackedWeights{}
	p.UpdatedAt = now
	return true
}
