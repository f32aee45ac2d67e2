package render

import (
	"math"
	"strings"

	"github.com/RyanBlaney/fourier-explorer/pkg/signal"
)

const (
	markInside  = '*'
	markOutside = '.'
	markAxis    = '-'
)

// Chart draws a partitioned series as an ASCII chart. Samples inside
// the integration window render as '*', samples outside as '.', so the
// highlighted/faded display pattern survives without a graphics layer.
func Chart(inside, outside signal.Series, rows, cols int) string {
	n := len(inside)
	if n == 0 || rows < 3 || cols < 2 {
		return ""
	}

	lo, hi := seriesRange(inside, outside)
	if hi <= lo {
		hi = lo + 1
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Zero axis, when zero is inside the value range.
	if lo <= 0 && 0 <= hi {
		axis := valueRow(0, lo, hi, rows)
		for j := 0; j < cols; j++ {
			grid[axis][j] = markAxis
		}
	}

	for j := 0; j < cols; j++ {
		// Nearest sample for this column.
		idx := j * (n - 1) / (cols - 1)
		if v := inside[idx].Value; !math.IsNaN(v) {
			grid[valueRow(v, lo, hi, rows)][j] = markInside
		} else if idx < len(outside) {
			if v := outside[idx].Value; !math.IsNaN(v) {
				grid[valueRow(v, lo, hi, rows)][j] = markOutside
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// valueRow maps a value to a grid row, top row holding the maximum.
func valueRow(v, lo, hi float64, rows int) int {
	frac := (v - lo) / (hi - lo)
	row := int(math.Round(float64(rows-1) * (1 - frac)))
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	return row
}

func seriesRange(inside, outside signal.Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range []signal.Series{inside, outside} {
		for _, p := range s {
			if math.IsNaN(p.Value) {
				continue
			}
			if p.Value < lo {
				lo = p.Value
			}
			if p.Value > hi {
				hi = p.Value
			}
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 1
	}
	return lo, hi
}
