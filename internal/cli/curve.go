// Package cli provides the command-line interface for the payoff builder.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kshitizgarg19/payoff-builder/internal/models"
	"github.com/kshitizgarg19/payoff-builder/internal/payoff"
)

// curveResult is the JSON shape of a one-shot evaluation.
type curveResult struct {
	Market  models.MarketContext `json:"market"`
	Legs    models.Strategy      `json:"legs"`
	Summary payoff.Summary       `json:"summary"`
	Table   payoff.PnLTable      `json:"table"`
	Curve   *payoff.Curve        `json:"curve,omitempty"`
}

func newCurveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Compute and display a strategy payoff curve",
		Long: `Evaluate a multi-leg strategy over a price sweep around spot and
display the payoff chart, max profit/loss, breakevens, and per-leg P&L.`,
		Example: `  payoff-builder curve --spot 100 --leg buy:call:100:5
  payoff-builder curve --spot 48200 --underlying BANKNIFTY \
      --leg buy:call:48200:320:25 --leg sell:call:48700:150:25
  payoff-builder curve --spot 100 --live 104 --leg long:fut:2 --json --points`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			live, _ := cmd.Flags().GetFloat64("live")
			underlying, _ := cmd.Flags().GetString("underlying")
			legSpecs, _ := cmd.Flags().GetStringArray("leg")
			low, _ := cmd.Flags().GetFloat64("low")
			high, _ := cmd.Flags().GetFloat64("high")
			samples, _ := cmd.Flags().GetInt("samples")
			tolerance, _ := cmd.Flags().GetFloat64("tolerance")
			interpolate, _ := cmd.Flags().GetBool("interpolate")
			includePoints, _ := cmd.Flags().GetBool("points")

			mc, err := models.NewMarketContext(underlying, spot, live)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			legs, err := BuildStrategy(legSpecs)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if len(legs) == 0 {
				output.Warning("Add at least one --leg to see a payoff")
				return fmt.Errorf("no legs given")
			}

			params := payoff.CurveParams{
				LowFactor:  low,
				HighFactor: high,
				Samples:    samples,
			}
			if err := params.Validate(); err != nil {
				output.Error("%v", err)
				return err
			}
			if tolerance < 0 {
				err := fmt.Errorf("tolerance must be non-negative, got %.2f", tolerance)
				output.Error("%v", err)
				return err
			}
			curve := payoff.ComputeCurve(legs, mc.SpotPrice, params)
			summary := payoff.SummaryMetrics(curve.Prices, curve.PnLs, tolerance)
			if interpolate {
				summary.Breakevens = payoff.InterpolatedBreakevens(curve.Prices, curve.PnLs)
			}
			table := payoff.BuildPnLTable(legs, mc)

			app.Logger.Debug().
				Str("underlying", mc.Underlying).
				Float64("spot", mc.SpotPrice).
				Int("legs", len(legs)).
				Int("samples", len(curve.Prices)).
				Msg("curve computed")

			if output.IsJSON() {
				result := curveResult{
					Market:  mc,
					Legs:    legs,
					Summary: summary,
					Table:   table,
				}
				if includePoints {
					result.Curve = &curve
				}
				return output.JSON(result)
			}

			displayCurve(output, mc, legs, curve, summary, table)
			return nil
		},
	}

	def := payoff.DefaultCurveParams()
	cmd.Flags().Float64("spot", 0, "current spot / cash price (required)")
	cmd.Flags().Float64("live", 0, "today's / live price (default: spot)")
	cmd.Flags().String("underlying", "", "underlying name, e.g. BANKNIFTY / GOLD / RELIANCE")
	cmd.Flags().StringArray("leg", nil, "strategy leg spec (repeatable)")
	cmd.Flags().Float64("low", def.LowFactor, "lower bound of price sweep as fraction of spot")
	cmd.Flags().Float64("high", def.HighFactor, "upper bound of price sweep as fraction of spot")
	cmd.Flags().Int("samples", def.Samples, "resolution of the price sweep")
	cmd.Flags().Float64("tolerance", payoff.DefaultTolerance, "breakeven detection band in currency units")
	cmd.Flags().Bool("interpolate", false, "exact interpolated breakevens instead of the tolerance band")
	cmd.Flags().Bool("points", false, "include curve points in JSON output")
	cmd.MarkFlagRequired("spot")

	return cmd
}

func displayCurve(output *Output, mc models.MarketContext, legs models.Strategy, curve payoff.Curve, summary payoff.Summary, table payoff.PnLTable) {
	title := "Payoff Curve"
	if mc.Underlying != "" {
		title += " - " + mc.Underlying
	}
	output.Bold(title)
	output.Println()

	for _, line := range RenderChart(curve, mc.SpotPrice, mc.EffectiveLivePrice()) {
		output.Println(line)
	}
	output.Println()

	output.Printf("  Max Profit:   %s\n", output.FormatPnL(summary.MaxProfit))
	output.Printf("  Max Loss:     %s\n", output.FormatPnL(summary.MaxLoss))
	output.Printf("  Breakeven(s): %s\n", FormatBreakevens(summary.Breakevens, 4))
	output.Println()

	output.Bold("P&L Summary")
	t := NewTable(output, "Leg", "Instrument", "Position", "Strike", "Premium", "Lot", "P&L Today", "P&L at Spot")
	for _, row := range table.Rows {
		strike, premium := "-", "-"
		if row.Leg.Instrument.IsOption() {
			strike = FormatPrice(row.Leg.StrikeValue())
			premium = FormatPrice(row.Leg.PremiumValue())
		}
		t.AddRow(
			fmt.Sprintf("%d", row.Index),
			string(row.Leg.Instrument),
			string(row.Leg.Position),
			strike,
			premium,
			fmt.Sprintf("%d", row.Leg.LotSize),
			output.FormatPnL(row.PnLLive),
			output.FormatPnL(row.PnLSpot),
		)
	}
	t.Render()
	output.Println()
	output.Printf("  Total P&L Today:   %s\n", output.FormatPnL(table.TotalLive))
	output.Printf("  Total P&L at Spot: %s\n", output.FormatPnL(table.TotalSpot))
}
