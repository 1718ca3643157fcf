package payoff

import (
	"github.com/kshitizgarg19/payoff-builder/internal/models"
)

// TableRow is one leg's line in the P&L summary table.
type TableRow struct {
	Index   int        `json:"index"` // 1-based, display order
	Leg     models.Leg `json:"leg"`
	PnLLive float64    `json:"pnl_live"` // at the live price
	PnLSpot float64    `json:"pnl_spot"` // at the spot price
}

// PnLTable is the per-leg P&L breakdown with strategy totals.
type PnLTable struct {
	Rows      []TableRow `json:"rows"`
	TotalLive float64    `json:"total_live"`
	TotalSpot float64    `json:"total_spot"`
}

// BuildPnLTable evaluates every leg at the live price and at spot.
func BuildPnLTable(strategy models.Strategy, mc models.MarketContext) PnLTable {
	table := PnLTable{Rows: make([]TableRow, 0, len(strategy))}
	live := mc.EffectiveLivePrice()
	for i, leg := range strategy {
		row := TableRow{
			Index:   i + 1,
			Leg:     leg,
			PnLLive: LegPnLAt(leg, live, mc.SpotPrice),
			PnLSpot: LegPnLAt(leg, mc.SpotPrice, mc.SpotPrice),
		}
		table.TotalLive += row.PnLLive
		table.TotalSpot += row.PnLSpot
		table.Rows = append(table.Rows, row)
	}
	return table
}
