package challenge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HorizonChange describes the effect of moving to a new horizon.
type HorizonChange struct {
	From, To     int
	Kept         []int // funded positions that stay, ascending
	Refunded     []int // funded positions beyond To, ascending
	RefundTotal  int64
	NeedsConfirm bool
	Applied      bool
}

// PlanHorizon previews a horizon change without touching state.
func (c *Controller) PlanHorizon(to int) (HorizonChange, error) {
	if !IsHorizonOption(to) {
		return HorizonChange{}, fmt.Errorf("%w: %d (options %v)", ErrUnknownHorizon, to, horizonOptions)
	}
	hc := HorizonChange{From: c.p.horizon, To: to}
	for _, u := range c.p.Funded() {
		if u <= to {
			hc.Kept = append(hc.Kept, u)
			continue
		}
		hc.Refunded = append(hc.Refunded, u)
		hc.RefundTotal += int64(u)
	}
	hc.NeedsConfirm = to < c.p.horizon && len(hc.Refunded) > 0
	return hc, nil
}

// ConfirmPrompt is the question put to the Confirmer for hc.
func ConfirmPrompt(hc HorizonChange) string {
	return fmt.Sprintf(
		"Reducing the horizon to %d removes %d funded slot(s) beyond it. Their value returns to liquidity. Continue?",
		hc.To, len(hc.Refunded))
}

// SetHorizon moves the challenge to a new horizon. When funded positions
// would fall outside it, confirm is asked first; a decline (or a nil
// confirm) aborts with no change and no error.
func (c *Controller) SetHorizon(to int, confirm Confirmer) (HorizonChange, error) {
	hc, err := c.PlanHorizon(to)
	if err != nil {
		return hc, c.reject(err, fmt.Sprintf("Horizon %d is not available.", to))
	}

	if hc.NeedsConfirm && (confirm == nil || !confirm.Confirm(ConfirmPrompt(hc))) {
		c.log.Debug().Int("from", hc.From).Int("to", hc.To).Msg("horizon change declined")
		return hc, nil
	}

	c.p.horizon = to
	for _, u := range hc.Refunded {
		delete(c.p.funded, u)
	}
	hc.Applied = true

	if len(hc.Refunded) > 0 {
		c.p.liquidity = c.p.liquidity.Add(decimal.NewFromInt(hc.RefundTotal))
		c.status.Set(fmt.Sprintf("Horizon set to %d. %s returned to liquidity.", to, c.money(hc.RefundTotal)), KindInfo)
	} else {
		c.status.Set(fmt.Sprintf("Horizon set to %d units.", to), KindSuccess)
	}

	c.log.Info().
		Int("from", hc.From).
		Int("to", hc.To).
		Int("refunded", len(hc.Refunded)).
		Int64("refund_total", hc.RefundTotal).
		Msg("horizon changed")
	return hc, nil
}
