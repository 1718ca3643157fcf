// Package payoff computes expiry profit-and-loss for option and futures
// strategies. The computations are pure and never fail: callers validate
// legs, market inputs, and sweep parameters before handing them in.
package payoff

import (
	"math"

	apperrors "github.com/kshitizgarg19/payoff-builder/internal/errors"
	"github.com/kshitizgarg19/payoff-builder/internal/models"
)

// Default sweep and detection parameters. The breakeven tolerance is an
// absolute currency band, not a root solve: with a coarse sweep it can
// match zero, one, or several samples around each true crossing.
const (
	DefaultLowFactor  = 0.5
	DefaultHighFactor = 1.5
	DefaultSamples    = 300
	DefaultTolerance  = 5.0

	// MaxSamples caps the sweep resolution a caller may request.
	MaxSamples = 10000
)

// CurveParams controls the price sweep of ComputeCurve.
type CurveParams struct {
	LowFactor  float64 // lower bound as a fraction of spot
	HighFactor float64 // upper bound as a fraction of spot
	Samples    int     // number of evenly spaced prices, endpoints included
}

// DefaultCurveParams returns the standard sweep: 300 samples over
// [0.5*spot, 1.5*spot].
func DefaultCurveParams() CurveParams {
	return CurveParams{
		LowFactor:  DefaultLowFactor,
		HighFactor: DefaultHighFactor,
		Samples:    DefaultSamples,
	}
}

// Validate checks the sweep bounds. ComputeCurve assumes validated
// params: an inverted sweep or an unbounded sample count never reaches
// the engine.
func (p CurveParams) Validate() error {
	if p.LowFactor <= 0 {
		return apperrors.NewValidationError("low_factor", p.LowFactor, "must be positive")
	}
	if p.HighFactor <= p.LowFactor {
		return apperrors.NewValidationError("high_factor", p.HighFactor, "must be greater than low_factor")
	}
	if p.Samples < 2 {
		return apperrors.NewValidationError("samples", p.Samples, "must be at least 2")
	}
	if p.Samples > MaxSamples {
		return apperrors.NewValidationError("samples", p.Samples, "exceeds the resolution cap")
	}
	return nil
}

// Curve holds a computed payoff curve. Prices and PnLs have equal length.
type Curve struct {
	Prices []float64 `json:"prices"`
	PnLs   []float64 `json:"pnls"`
}

// Summary holds the derived statistics of a payoff curve.
type Summary struct {
	MaxProfit  float64   `json:"max_profit"`
	MaxLoss    float64   `json:"max_loss"`
	Breakevens []float64 `json:"breakevens"`
}

// LegPayoff computes the expiry P&L of a single leg at the given
// underlying price. The spot price is used only as the entry reference
// for futures legs.
func LegPayoff(price float64, leg models.Leg, spot float64) float64 {
	var pnl float64
	switch leg.Instrument {
	case models.InstrumentCall:
		pnl = math.Max(price-leg.StrikeValue(), 0) - leg.PremiumValue()
	case models.InstrumentPut:
		pnl = math.Max(leg.StrikeValue()-price, 0) - leg.PremiumValue()
	default:
		pnl = price - spot
	}
	if leg.Position == models.PositionShort {
		pnl = -pnl
	}
	return pnl * float64(leg.LotSize)
}

// LegPayoffSeries computes LegPayoff element-wise over a price sequence.
func LegPayoffSeries(prices []float64, leg models.Leg, spot float64) []float64 {
	out := make([]float64, len(prices))
	for i, p := range prices {
		out[i] = LegPayoff(p, leg, spot)
	}
	return out
}

// LegPnLAt is LegPayoff with the argument order used by the P&L table:
// it answers "what is this leg worth at this price". The table evaluates
// it at the live price and at spot.
func LegPnLAt(leg models.Leg, price, spot float64) float64 {
	return LegPayoff(price, leg, spot)
}

// StrategyPayoff sums LegPayoff over every leg. An empty strategy pays
// zero everywhere.
func StrategyPayoff(price float64, strategy models.Strategy, spot float64) float64 {
	var total float64
	for _, leg := range strategy {
		total += LegPayoff(price, leg, spot)
	}
	return total
}

// StrategyPayoffSeries computes StrategyPayoff element-wise.
func StrategyPayoffSeries(prices []float64, strategy models.Strategy, spot float64) []float64 {
	out := make([]float64, len(prices))
	for i, p := range prices {
		out[i] = StrategyPayoff(p, strategy, spot)
	}
	return out
}

// ComputeCurve evaluates the strategy over an inclusive, evenly spaced
// price sweep centered on spot. Fewer than 2 samples collapses to a
// single point at the lower bound.
func ComputeCurve(strategy models.Strategy, spot float64, params CurveParams) Curve {
	prices := Linspace(spot*params.LowFactor, spot*params.HighFactor, params.Samples)
	return Curve{
		Prices: prices,
		PnLs:   StrategyPayoffSeries(prices, strategy, spot),
	}
}

// Linspace returns n evenly spaced values over [lo, hi], both endpoints
// included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// SummaryMetrics computes max profit, max loss, and the breakevens of a
// sampled curve. Breakevens are every sampled price whose P&L is within
// tolerance of zero, in ascending price order; the full list is
// returned and any display truncation is left to the caller. Empty
// input yields a zero Summary.
func SummaryMetrics(prices, pnls []float64, tolerance float64) Summary {
	if len(pnls) == 0 {
		return Summary{Breakevens: []float64{}}
	}
	s := Summary{
		MaxProfit:  pnls[0],
		MaxLoss:    pnls[0],
		Breakevens: []float64{},
	}
	for i, pnl := range pnls {
		if pnl > s.MaxProfit {
			s.MaxProfit = pnl
		}
		if pnl < s.MaxLoss {
			s.MaxLoss = pnl
		}
		if math.Abs(pnl) <= tolerance && i < len(prices) {
			s.Breakevens = append(s.Breakevens, prices[i])
		}
	}
	return s
}

// InterpolatedBreakevens finds the zero crossings of a sampled curve by
// linear interpolation between adjacent samples. Unlike the tolerance
// band of SummaryMetrics this returns one price per sign change (plus
// any exact zeros), so it stays precise on coarse sweeps.
func InterpolatedBreakevens(prices, pnls []float64) []float64 {
	n := len(pnls)
	if len(prices) < n {
		n = len(prices)
	}
	crossings := []float64{}
	for i := 0; i < n; i++ {
		if pnls[i] == 0 {
			if len(crossings) == 0 || crossings[len(crossings)-1] != prices[i] {
				crossings = append(crossings, prices[i])
			}
			continue
		}
		if i+1 >= n || pnls[i+1] == 0 {
			continue
		}
		if (pnls[i] < 0) != (pnls[i+1] < 0) {
			t := pnls[i] / (pnls[i] - pnls[i+1])
			crossings = append(crossings, prices[i]+t*(prices[i+1]-prices[i]))
		}
	}
	return crossings
}
