// Package chart renders a terminal scatter plot of listings with the fitted
// regression line overlaid. The plot body is plain ASCII so it stays
// deterministic and testable; lipgloss only colors the output.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/husein14azimi/house-price-prediction-simple-lr/housing"
	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
)

const (
	pointRune = '●'
	lineRune  = '·'
	bothRune  = '◉'
)

var (
	pointStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))  // Cyan
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")) // Pink
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")) // Gray
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Options control the rendered plot.
type Options struct {
	// Width and Height are the plot body dimensions in cells.
	Width  int
	Height int
	// NoColor disables lipgloss styling, leaving plain ASCII.
	NoColor bool
}

// DefaultOptions returns a plot sized for a standard terminal.
func DefaultOptions() Options {
	return Options{Width: 60, Height: 20}
}

// Render draws the listings as a scatter plot. When result is non-nil and
// its line is defined, the fitted line is overlaid and described in the
// legend.
func Render(listings []housing.Listing, result *regression.FitResult, opts Options) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if len(listings) == 0 {
		return "no listings to plot\n"
	}

	minX, maxX := listings[0].Area, listings[0].Area
	minY, maxY := listings[0].Price, listings[0].Price
	for _, l := range listings[1:] {
		minX = math.Min(minX, l.Area)
		maxX = math.Max(maxX, l.Area)
		minY = math.Min(minY, l.Price)
		maxY = math.Max(maxY, l.Price)
	}

	// Avoid a zero-width range when all points share a coordinate.
	if maxX == minX {
		minX, maxX = minX-1, maxX+1
	}
	if maxY == minY {
		minY, maxY = minY-1, maxY+1
	}

	grid := make([][]rune, opts.Height)
	for i := range grid {
		grid[i] = make([]rune, opts.Width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	hasLine := result != nil && result.Formula != "" &&
		!strings.HasPrefix(result.Formula, "Undefined")

	// Line first so data points overwrite it into the combined marker.
	if hasLine {
		for col := 0; col < opts.Width; col++ {
			x := minX + (maxX-minX)*float64(col)/float64(opts.Width-1)
			y := result.Line.Predict(x)
			if row, ok := toRow(y, minY, maxY, opts.Height); ok {
				grid[row][col] = lineRune
			}
		}
	}

	for _, l := range listings {
		col := toCol(l.Area, minX, maxX, opts.Width)
		row, ok := toRow(l.Price, minY, maxY, opts.Height)
		if !ok {
			continue
		}
		if grid[row][col] == lineRune {
			grid[row][col] = bothRune
		} else {
			grid[row][col] = pointRune
		}
	}

	var b strings.Builder
	yLabelWidth := labelWidth(minY, maxY)

	for row := 0; row < opts.Height; row++ {
		// Label the top, middle and bottom rows only.
		label := strings.Repeat(" ", yLabelWidth)
		switch row {
		case 0:
			label = fmt.Sprintf("%*.0f", yLabelWidth, maxY)
		case opts.Height / 2:
			label = fmt.Sprintf("%*.0f", yLabelWidth, (minY+maxY)/2)
		case opts.Height - 1:
			label = fmt.Sprintf("%*.0f", yLabelWidth, minY)
		}
		b.WriteString(style(label+" |", axisStyle, opts.NoColor))
		b.WriteString(renderRow(grid[row], opts.NoColor))
		b.WriteByte('\n')
	}

	b.WriteString(style(strings.Repeat(" ", yLabelWidth)+" +"+
		strings.Repeat("-", opts.Width), axisStyle, opts.NoColor))
	b.WriteByte('\n')

	xAxis := fmt.Sprintf("%-*.0f%*.0f", opts.Width/2, minX, opts.Width-opts.Width/2, maxX)
	b.WriteString(strings.Repeat(" ", yLabelWidth+2))
	b.WriteString(style(xAxis, axisStyle, opts.NoColor))
	b.WriteByte('\n')

	b.WriteString(legend(result, opts.NoColor))

	return b.String()
}

func legend(result *regression.FitResult, noColor bool) string {
	var b strings.Builder
	b.WriteString(style(string(pointRune)+" listing", pointStyle, noColor))
	if result != nil {
		b.WriteString("   ")
		entry := result.Formula
		if !strings.HasPrefix(entry, "Undefined") {
			entry = string(lineRune) + " " + entry
		}
		b.WriteString(style(entry, lineStyle, noColor))
		b.WriteByte('\n')
		stats := fmt.Sprintf("R² = %.4f   RMSE = %.2f", result.RSquared, result.RMSE)
		b.WriteString(style(stats, legendStyle, noColor))
	}
	b.WriteByte('\n')
	return b.String()
}

func renderRow(row []rune, noColor bool) string {
	if noColor {
		return string(row)
	}
	var b strings.Builder
	for _, r := range row {
		switch r {
		case pointRune, bothRune:
			b.WriteString(pointStyle.Render(string(r)))
		case lineRune:
			b.WriteString(lineStyle.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func style(s string, st lipgloss.Style, noColor bool) string {
	if noColor {
		return s
	}
	return st.Render(s)
}

func toCol(x, minX, maxX float64, width int) int {
	col := int(math.Round((x - minX) / (maxX - minX) * float64(width-1)))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return col
}

// toRow maps y to a grid row, row 0 being the top. Values outside the
// plotted range report ok=false.
func toRow(y, minY, maxY float64, height int) (int, bool) {
	if y < minY || y > maxY || math.IsNaN(y) {
		return 0, false
	}
	row := int(math.Round((maxY - y) / (maxY - minY) * float64(height-1)))
	if row < 0 || row >= height {
		return 0, false
	}
	return row, true
}

func labelWidth(minY, maxY float64) int {
	w := len(fmt.Sprintf("%.0f", maxY))
	if lw := len(fmt.Sprintf("%.0f", minY)); lw > w {
		w = lw
	}
	return w
}
