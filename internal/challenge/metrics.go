package challenge

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AggregateGoal is the currency needed to fund every position 1..horizon.
func AggregateGoal(horizon int) int64 {
	n := int64(horizon)
	return n * (n + 1) / 2
}

// AverageSlot is the mean position value of a horizon, (horizon+1)/2.
func AverageSlot(horizon int) decimal.Decimal {
	if horizon < 1 {
		return decimal.Zero
	}
	return decimal.NewFromInt(AggregateGoal(horizon)).Div(decimal.NewFromInt(int64(horizon)))
}

// AggregateGoal is the triangular goal for the current horizon.
func (p *Portfolio) AggregateGoal() int64 {
	return AggregateGoal(p.horizon)
}

// ConsolidatedTotal is the sum of all funded positions.
func (p *Portfolio) ConsolidatedTotal() int64 {
	var sum int64
	for u := range p.funded {
		sum += int64(u)
	}
	return sum
}

// CompletionRate is the share of funded positions, 0..100.
func (p *Portfolio) CompletionRate() float64 {
	return float64(len(p.funded)) / float64(p.horizon) * 100
}

// RemainingExposure is what is still missing to reach the aggregate goal.
func (p *Portfolio) RemainingExposure() int64 {
	return p.AggregateGoal() - p.ConsolidatedTotal()
}

// RecommendedUnit returns the largest unfunded position the current
// liquidity can pay for. ok is false when no such position exists.
func (p *Portfolio) RecommendedUnit() (unit int, ok bool) {
	// Compare in decimal: IntPart wraps for liquidity beyond int64.
	top := p.horizon
	if p.liquidity.LessThan(decimal.NewFromInt(int64(top))) {
		top = int(p.liquidity.Floor().IntPart())
	}
	for u := top; u >= 1; u-- {
		if !p.IsFunded(u) {
			return u, true
		}
	}
	return 0, false
}

// LargestFunded returns up to n funded positions, largest first.
func (p *Portfolio) LargestFunded(n int) []int {
	funded := p.Funded()
	sort.Sort(sort.Reverse(sort.IntSlice(funded)))
	if n >= 0 && len(funded) > n {
		funded = funded[:n]
	}
	return funded
}

// CoverageBands splits 1..horizon into k contiguous bands and returns the
// funded fraction (0..1) of each. Bands absorb the remainder front-first.
func (p *Portfolio) CoverageBands(k int) []float64 {
	if k <= 0 {
		return nil
	}
	if k > p.horizon {
		k = p.horizon
	}
	base := p.horizon / k
	rem := p.horizon % k
	out := make([]float64, k)
	start := 1
	for i := range out {
		size := base
		if i < rem {
			size++
		}
		funded := 0
		for u := start; u < start+size; u++ {
			if p.IsFunded(u) {
				funded++
			}
		}
		out[i] = float64(funded) / float64(size)
		start += size
	}
	return out
}

// Snapshot is a read-only copy of the challenge and its derived metrics.
type Snapshot struct {
	Label             string
	Horizon           int
	Funded            []int
	Liquidity         string
	AggregateGoal     int64
	ConsolidatedTotal int64
	CompletionRate    float64
	RemainingExposure int64
	RecommendedUnit   int // 0 when none
}

// Snapshot captures the current state.
func (p *Portfolio) Snapshot() Snapshot {
	rec, _ := p.RecommendedUnit()
	return Snapshot{
		Label:             p.label,
		Horizon:           p.horizon,
		Funded:            p.Funded(),
		Liquidity:         p.liquidity.String(),
		AggregateGoal:     p.AggregateGoal(),
		ConsolidatedTotal: p.ConsolidatedTotal(),
		CompletionRate:    p.CompletionRate(),
		RemainingExposure: p.RemainingExposure(),
		RecommendedUnit:   rec,
	}
}
