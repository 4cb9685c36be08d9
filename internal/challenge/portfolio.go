// Package challenge holds the savings-challenge state and the rules that
// mutate it: funding and unfunding positions, injecting liquidity and
// changing the target horizon.
package challenge

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultHorizon is the horizon a new challenge starts with when none is configured.
const DefaultHorizon = 200

var horizonOptions = []int{100, 200, 365, 500, 730}

// HorizonOptions returns the horizons a challenge can be reconfigured to, ascending.
func HorizonOptions() []int {
	out := make([]int, len(horizonOptions))
	copy(out, horizonOptions)
	return out
}

// IsHorizonOption reports whether n is one of HorizonOptions.
func IsHorizonOption(n int) bool {
	for _, h := range horizonOptions {
		if h == n {
			return true
		}
	}
	return false
}

// Portfolio is the in-memory state of one savings challenge.
// Position p costs exactly p units of currency to fund.
type Portfolio struct {
	id        uuid.UUID
	label     string
	horizon   int
	funded    map[int]struct{}
	liquidity decimal.Decimal
}

// NewPortfolio creates an empty challenge with the given label and horizon.
func NewPortfolio(label string, horizon int) (*Portfolio, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("horizon %d: must be at least 1", horizon)
	}
	return &Portfolio{
		id:        uuid.New(),
		label:     label,
		horizon:   horizon,
		funded:    make(map[int]struct{}),
		liquidity: decimal.Zero,
	}, nil
}

// ID identifies the session in logs.
func (p *Portfolio) ID() uuid.UUID { return p.id }

// Label is the free-text display name.
func (p *Portfolio) Label() string { return p.label }

// Horizon is the number of addressable positions.
func (p *Portfolio) Horizon() int { return p.horizon }

// Liquidity is the unallocated balance.
func (p *Portfolio) Liquidity() decimal.Decimal { return p.liquidity }

// IsFunded reports whether position unit is funded.
func (p *Portfolio) IsFunded(unit int) bool {
	_, ok := p.funded[unit]
	return ok
}

// FundedCount is the number of funded positions.
func (p *Portfolio) FundedCount() int { return len(p.funded) }

// Funded returns the funded positions in ascending order.
func (p *Portfolio) Funded() []int {
	out := make([]int, 0, len(p.funded))
	for u := range p.funded {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// CanAfford reports whether the current liquidity covers position unit.
func (p *Portfolio) CanAfford(unit int) bool {
	return decimal.NewFromInt(int64(unit)).LessThanOrEqual(p.liquidity)
}
