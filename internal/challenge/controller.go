package challenge

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrUnitOutOfRange        = errors.New("unit out of range")
	ErrUnknownHorizon        = errors.New("unknown horizon")
	ErrNoRecommendation      = errors.New("no affordable position")
)

// Options configures a Controller. Zero values pick sensible defaults.
type Options struct {
	StatusTTL time.Duration
	Clock     func() time.Time
	// Format renders currency amounts inside status messages.
	Format func(decimal.Decimal) string
	// Logger receives one line per operation. The zero Logger discards.
	Logger zerolog.Logger
}

// Controller is the only writer of a Portfolio. Every operation runs to
// completion and either applies fully or leaves the Portfolio untouched.
type Controller struct {
	p      *Portfolio
	status *StatusBoard
	format func(decimal.Decimal) string
	log    zerolog.Logger
}

// NewController binds a controller to p.
func NewController(p *Portfolio, opts Options) *Controller {
	format := opts.Format
	if format == nil {
		format = func(d decimal.Decimal) string { return d.StringFixed(2) }
	}
	return &Controller{
		p:      p,
		status: NewStatusBoard(opts.StatusTTL, opts.Clock),
		format: format,
		log:    opts.Logger.With().Str("portfolio", p.ID().String()).Logger(),
	}
}

// Portfolio gives read access to the controlled state.
func (c *Controller) Portfolio() *Portfolio { return c.p }

// Status is the board holding the last operation's message.
func (c *Controller) Status() *StatusBoard { return c.status }

func (c *Controller) money(units int64) string {
	return c.format(decimal.NewFromInt(units))
}

func (c *Controller) reject(err error, message string) error {
	c.status.Set(message, KindError)
	c.log.Warn().Err(err).Msg("operation rejected")
	return err
}

// ToggleAllocation funds unit when it is unfunded and affordable, and
// releases it back into liquidity when it is already funded.
func (c *Controller) ToggleAllocation(unit int) error {
	if unit < 1 || unit > c.p.horizon {
		return c.reject(
			fmt.Errorf("%w: %d not in 1..%d", ErrUnitOutOfRange, unit, c.p.horizon),
			fmt.Sprintf("Slot %d is outside the 1..%d horizon.", unit, c.p.horizon),
		)
	}

	cost := decimal.NewFromInt(int64(unit))

	if c.p.IsFunded(unit) {
		delete(c.p.funded, unit)
		c.p.liquidity = c.p.liquidity.Add(cost)
		c.status.Set(fmt.Sprintf("Slot %d released: %s returned to liquidity.", unit, c.money(int64(unit))), KindInfo)
		c.log.Info().Int("unit", unit).Str("liquidity", c.p.liquidity.String()).Msg("position released")
		return nil
	}

	if !c.p.CanAfford(unit) {
		return c.reject(
			fmt.Errorf("%w: slot %d costs %s, available %s", ErrInsufficientLiquidity, unit, cost, c.p.liquidity),
			fmt.Sprintf("Insufficient liquidity for slot %d.", unit),
		)
	}

	c.p.liquidity = c.p.liquidity.Sub(cost)
	c.p.funded[unit] = struct{}{}
	c.status.Set(fmt.Sprintf("Slot %d funded with %s.", unit, c.money(int64(unit))), KindSuccess)
	c.log.Info().Int("unit", unit).Str("liquidity", c.p.liquidity.String()).Msg("position funded")
	return nil
}

// FundRecommended funds the largest affordable unfunded position.
func (c *Controller) FundRecommended() (int, error) {
	unit, ok := c.p.RecommendedUnit()
	if !ok {
		return 0, c.reject(ErrNoRecommendation, "No open slot fits the available liquidity.")
	}
	return unit, c.ToggleAllocation(unit)
}

// ParseAmount reads a user-typed amount. Surrounding space is ignored and a
// lone comma is taken as the decimal separator. The result is always > 0.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, d)
	}
	return d, nil
}

// InjectLiquidity parses raw and adds it to the available liquidity.
func (c *Controller) InjectLiquidity(raw string) error {
	amount, err := ParseAmount(raw)
	if err != nil {
		return c.reject(err, "Enter a positive amount.")
	}
	return c.Inject(amount)
}

// Inject adds a positive amount to the available liquidity.
func (c *Controller) Inject(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return c.reject(
			fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, amount),
			"Enter a positive amount.",
		)
	}
	c.p.liquidity = c.p.liquidity.Add(amount)
	c.status.Set(fmt.Sprintf("Injected %s into available liquidity.", c.format(amount)), KindSuccess)
	c.log.Info().Str("amount", amount.String()).Str("liquidity", c.p.liquidity.String()).Msg("liquidity injected")
	return nil
}
