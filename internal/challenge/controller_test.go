package challenge

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, horizon int) *Controller {
	t.Helper()
	p, err := NewPortfolio("tester", horizon)
	require.NoError(t, err)
	return NewController(p, Options{})
}

// seed funds the given positions directly and sets liquidity.
func seed(c *Controller, liquidity int64, funded ...int) {
	for _, u := range funded {
		c.p.funded[u] = struct{}{}
	}
	c.p.liquidity = decimal.NewFromInt(liquidity)
}

func assertInvariants(t *testing.T, p *Portfolio) {
	t.Helper()
	for _, u := range p.Funded() {
		assert.GreaterOrEqual(t, u, 1)
		assert.LessOrEqual(t, u, p.Horizon())
	}
	assert.False(t, p.Liquidity().IsNegative(), "liquidity %s is negative", p.Liquidity())
}

func TestNewPortfolioRejectsEmptyHorizon(t *testing.T) {
	_, err := NewPortfolio("x", 0)
	assert.Error(t, err)
}

func TestScenarioInjectThenFund(t *testing.T) {
	c := newTestController(t, 100)

	require.NoError(t, c.InjectLiquidity("50"))
	assert.True(t, c.p.Liquidity().Equal(decimal.NewFromInt(50)))

	require.NoError(t, c.ToggleAllocation(50))
	assert.True(t, c.p.Liquidity().IsZero())
	assert.Equal(t, []int{50}, c.p.Funded())
	assert.Equal(t, KindSuccess, c.Status().Current().Kind)

	err := c.ToggleAllocation(51)
	assert.ErrorIs(t, err, ErrInsufficientLiquidity)
	assert.True(t, c.p.Liquidity().IsZero())
	assert.Equal(t, []int{50}, c.p.Funded())
	assert.Equal(t, KindError, c.Status().Current().Kind)
	assert.Contains(t, c.Status().Current().Message, "Insufficient liquidity")
}

func TestToggleTwiceRestoresState(t *testing.T) {
	c := newTestController(t, 200)
	seed(c, 300, 10, 20)
	before := c.p.Snapshot()

	require.NoError(t, c.ToggleAllocation(120))
	require.NoError(t, c.ToggleAllocation(120))
	assert.Equal(t, before, c.p.Snapshot())

	require.NoError(t, c.ToggleAllocation(20))
	assert.Equal(t, KindInfo, c.Status().Current().Kind)
	require.NoError(t, c.ToggleAllocation(20))
	assert.Equal(t, before, c.p.Snapshot())
}

func TestToggleConservesValue(t *testing.T) {
	c := newTestController(t, 365)
	require.NoError(t, c.InjectLiquidity("1000.25"))

	total := func() decimal.Decimal {
		return c.p.Liquidity().Add(decimal.NewFromInt(c.p.ConsolidatedTotal()))
	}
	want := total()

	for _, u := range []int{365, 1, 200, 365, 300, 1} {
		_ = c.ToggleAllocation(u)
		assert.True(t, total().Equal(want), "after toggling %d: %s != %s", u, total(), want)
		assertInvariants(t, c.p)
	}
}

func TestToggleOutOfRange(t *testing.T) {
	c := newTestController(t, 100)
	seed(c, 1000)

	for _, u := range []int{0, -3, 101} {
		err := c.ToggleAllocation(u)
		assert.ErrorIs(t, err, ErrUnitOutOfRange)
	}
	assert.Empty(t, c.p.Funded())
	assert.True(t, c.p.Liquidity().Equal(decimal.NewFromInt(1000)))
}

func TestInjectRejectsInvalidAmounts(t *testing.T) {
	c := newTestController(t, 100)
	seed(c, 10)

	for _, raw := range []string{"-5", "abc", "", "0", "  ", "NaN", "1.2.3"} {
		err := c.InjectLiquidity(raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", raw)
		assert.True(t, c.p.Liquidity().Equal(decimal.NewFromInt(10)), "input %q changed liquidity", raw)
		assert.Equal(t, KindError, c.Status().Current().Kind)
	}

	assert.ErrorIs(t, c.Inject(decimal.NewFromInt(-1)), ErrInvalidAmount)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"50", "50"},
		{" 12.5 ", "12.5"},
		{"0,75", "0.75"},
		{"1e2", "100"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%q -> %s, want %s", tt.raw, got, tt.want)
	}
}

func TestInjectFormatsAmount(t *testing.T) {
	p, err := NewPortfolio("x", 100)
	require.NoError(t, err)
	c := NewController(p, Options{Format: func(d decimal.Decimal) string { return "R$" + d.StringFixed(2) }})

	require.NoError(t, c.InjectLiquidity("7,5"))
	assert.Contains(t, c.Status().Current().Message, "R$7.50")
}

func TestFundRecommended(t *testing.T) {
	c := newTestController(t, 10)
	seed(c, 7, 7)

	unit, err := c.FundRecommended()
	require.NoError(t, err)
	assert.Equal(t, 6, unit)
	assert.Equal(t, []int{6, 7}, c.p.Funded())
	assert.True(t, c.p.Liquidity().Equal(decimal.NewFromInt(1)))

	_, err = c.FundRecommended()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 7}, c.p.Funded())

	_, err = c.FundRecommended()
	assert.ErrorIs(t, err, ErrNoRecommendation)
	assert.Equal(t, KindError, c.Status().Current().Kind)
}

func TestFundRecommendedWithHugeLiquidity(t *testing.T) {
	c := newTestController(t, 200)
	require.NoError(t, c.InjectLiquidity("1e19"))

	unit, err := c.FundRecommended()
	require.NoError(t, err)
	assert.Equal(t, 200, unit)
	assert.True(t, c.p.Liquidity().Equal(decimal.RequireFromString("1e19").Sub(decimal.NewFromInt(200))))
	assertInvariants(t, c.p)
}
