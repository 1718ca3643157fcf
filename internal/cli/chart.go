// Package cli provides the command-line interface for the payoff builder.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/kshitizgarg19/payoff-builder/internal/payoff"
)

const (
	chartWidth  = 60
	chartHeight = 15
)

// RenderChart draws an ASCII payoff diagram for a computed curve. The
// zero axis is drawn as a horizontal line; the spot and live price
// columns are marked. Returns one string per terminal row.
func RenderChart(curve payoff.Curve, spot, live float64) []string {
	return renderChart(curve, spot, live, chartWidth, chartHeight)
}

func renderChart(curve payoff.Curve, spot, live float64, width, height int) []string {
	if len(curve.Prices) == 0 || len(curve.PnLs) == 0 || width < 2 || height < 3 {
		return nil
	}

	minV, maxV := curve.PnLs[0], curve.PnLs[0]
	for _, v := range curve.PnLs {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	// Keep zero inside the vertical range so the axis is always drawn.
	minV = math.Min(minV, 0)
	maxV = math.Max(maxV, 0)
	if maxV == minV {
		maxV = minV + 1
	}

	rowOf := func(v float64) int {
		r := int(math.Round((maxV - v) / (maxV - minV) * float64(height-1)))
		if r < 0 {
			r = 0
		}
		if r > height-1 {
			r = height - 1
		}
		return r
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	zeroRow := rowOf(0)
	for c := 0; c < width; c++ {
		grid[zeroRow][c] = '─'
	}

	// Spot and live price marker columns.
	lo := curve.Prices[0]
	hi := curve.Prices[len(curve.Prices)-1]
	colFor := func(price float64) int {
		if hi <= lo || price < lo || price > hi {
			return -1
		}
		return int(math.Round((price - lo) / (hi - lo) * float64(width-1)))
	}
	markColumn := func(col int, mark rune) {
		if col < 0 {
			return
		}
		for r := 0; r < height; r++ {
			if grid[r][col] == ' ' {
				grid[r][col] = mark
			}
		}
	}
	spotCol := colFor(spot)
	liveCol := -1
	if live != spot {
		liveCol = colFor(live)
		markColumn(liveCol, '╎')
	}
	markColumn(spotCol, '┊')

	n := len(curve.Prices)
	for c := 0; c < width; c++ {
		i := c * (n - 1) / (width - 1)
		r := rowOf(curve.PnLs[i])
		if r == zeroRow {
			grid[r][c] = '╳'
		} else {
			grid[r][c] = '•'
		}
	}

	lines := make([]string, 0, height+2)
	for r := 0; r < height; r++ {
		label := strings.Repeat(" ", 8)
		switch r {
		case 0:
			label = "  Profit"
		case zeroRow:
			label = "       0"
		case height - 1:
			label = "    Loss"
		}
		lines = append(lines, fmt.Sprintf("%s │%s", label, string(grid[r])))
	}
	lines = append(lines, fmt.Sprintf("%s └%s", strings.Repeat(" ", 8), strings.Repeat("─", width)))

	axis := fmt.Sprintf("%-*s%s", width/2, FormatPrice(lo), FormatPrice(hi))
	if spotCol >= 0 {
		axis = fmt.Sprintf("%s   (┊ spot %s)", axis, FormatPrice(spot))
	}
	if liveCol >= 0 {
		axis = fmt.Sprintf("%s (╎ live %s)", axis, FormatPrice(live))
	}
	lines = append(lines, strings.Repeat(" ", 10)+axis)

	return lines
}
