package challenge

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregateGoal(t *testing.T) {
	tests := []struct {
		horizon int
		want    int64
	}{
		{1, 1},
		{10, 55},
		{100, 5050},
		{200, 20100},
		{365, 66795},
		{730, 266815},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AggregateGoal(tt.horizon), "horizon %d", tt.horizon)
	}
}

func TestAverageSlot(t *testing.T) {
	assert.True(t, AverageSlot(100).Equal(decimal.RequireFromString("50.5")))
	assert.True(t, AverageSlot(365).Equal(decimal.NewFromInt(183)))
	assert.True(t, AverageSlot(0).IsZero())
}

func TestDerivedMetrics(t *testing.T) {
	c := newTestController(t, 10)
	seed(c, 0, 1, 4, 10)
	p := c.Portfolio()

	assert.Equal(t, int64(55), p.AggregateGoal())
	assert.Equal(t, int64(15), p.ConsolidatedTotal())
	assert.Equal(t, int64(40), p.RemainingExposure())
	assert.InDelta(t, 30.0, p.CompletionRate(), 1e-9)
}

func TestRecommendedUnit(t *testing.T) {
	tests := []struct {
		name      string
		liquidity string
		funded    []int
		want      int
		ok        bool
	}{
		{"largest affordable", "7", nil, 7, true},
		{"skips funded", "7", []int{7, 6}, 5, true},
		{"fractional liquidity floors", "7.99", nil, 7, true},
		{"capped by horizon", "1000", nil, 10, true},
		{"nothing affordable", "0.5", nil, 0, false},
		{"all funded below liquidity", "3", []int{1, 2, 3}, 0, false},
		{"liquidity beyond int64", "1e19", nil, 10, true},
		{"liquidity of 2^64", "18446744073709551616", []int{10}, 9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, 10)
			seed(c, 0, tt.funded...)
			c.p.liquidity = decimal.RequireFromString(tt.liquidity)

			got, ok := c.p.RecommendedUnit()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLargestFunded(t *testing.T) {
	c := newTestController(t, 100)
	seed(c, 0, 3, 90, 12, 45, 7, 60)

	assert.Equal(t, []int{90, 60, 45, 12, 7}, c.p.LargestFunded(5))
	assert.Equal(t, []int{90, 60}, c.p.LargestFunded(2))
	assert.Len(t, c.p.LargestFunded(10), 6)
}

func TestCoverageBands(t *testing.T) {
	c := newTestController(t, 10)
	seed(c, 0, 1, 2, 3, 10)

	bands := c.p.CoverageBands(3) // 1-4, 5-7, 8-10
	assert.Len(t, bands, 3)
	assert.InDelta(t, 0.75, bands[0], 1e-9)
	assert.InDelta(t, 0.0, bands[1], 1e-9)
	assert.InDelta(t, 1.0/3, bands[2], 1e-9)

	assert.Len(t, c.p.CoverageBands(50), 10)
	assert.Nil(t, c.p.CoverageBands(0))
}

func TestHorizonOptionsIsCopy(t *testing.T) {
	opts := HorizonOptions()
	assert.Equal(t, []int{100, 200, 365, 500, 730}, opts)
	opts[0] = 1
	assert.True(t, IsHorizonOption(100))
	assert.False(t, IsHorizonOption(1))
}
