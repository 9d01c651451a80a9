package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n ")
	b.WriteString(cyan.Render("hullab"))
	b.WriteString(dim.Render("  trailerable hull design explorer"))
	b.WriteString("\n\n")

	left := m.viewControls()
	right := m.viewResults()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right))
	b.WriteString("\n")

	b.WriteString(m.viewCurve())
	b.WriteString("\n")
	b.WriteString(m.viewMap())
	b.WriteString("\n")

	b.WriteString(dim.Render(" ↑/↓ select  ←/→ adjust  shift big step  m map metric  t train  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m model) viewControls() string {
	var b strings.Builder
	b.WriteString(white.Render(" design") + "\n")
	for i, c := range m.controls {
		cursor := "  "
		style := dim
		if i == m.cursor {
			cursor = cyan.Render("> ")
			style = white
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(fmt.Sprintf("%-18s", c.label)))
		if c.isEnum() {
			b.WriteString(magenta.Render(fmt.Sprintf("%12s", c.display(m.params))))
		} else {
			b.WriteString(yellow.Render(fmt.Sprintf("%8s", c.display(m.params))))
			b.WriteString(" " + m.sliderBar(c))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) sliderBar(c control) string {
	d := hull.Domains[c.domain]
	frac := 0.0
	if d.Max > d.Min {
		frac = (c.get(m.params) - d.Min) / (d.Max - d.Min)
	}
	const width = 14
	filled := int(math.Round(frac * width))
	if filled > width {
		filled = width
	}
	return cyan.Render(strings.Repeat("█", filled)) + dimmer.Render(strings.Repeat("─", width-filled))
}

func (m model) viewResults() string {
	r := m.results
	var b strings.Builder
	b.WriteString(white.Render(" hydrostatics") + "\n")

	line := func(label string, value string) {
		b.WriteString(dim.Render(fmt.Sprintf("  %-14s", label)) + value + "\n")
	}

	line("displacement", yellow.Render(fmt.Sprintf("%7.1f kg", r.Displacement)))
	line("draft", yellow.Render(fmt.Sprintf("%7.3f m", r.Draft)))
	line("freeboard", yellow.Render(fmt.Sprintf("%7.3f m", r.Freeboard)))
	line("KB / BM", yellow.Render(fmt.Sprintf("%6.3f / %.3f m", r.KB, r.BM)))
	line("KG", yellow.Render(fmt.Sprintf("%7.3f m", r.KG)))
	line("GM", yellow.Render(fmt.Sprintf("%7.3f m", r.GM))+"  "+ratingStyle(r.Rating).Render(r.Rating.String()))
	line("hull speed", yellow.Render(fmt.Sprintf("%7.2f kn", r.HullSpeed)))
	line("froude", yellow.Render(fmt.Sprintf("%7.3f", r.Froude)))
	if r.Planing {
		line("max speed", yellow.Render(fmt.Sprintf("%7.2f kn", r.MaxSpeed))+"  "+green.Render("planing"))
	} else {
		line("max speed", yellow.Render(fmt.Sprintf("%7.2f kn", r.MaxSpeed))+"  "+dim.Render("displacement"))
	}

	b.WriteString("\n" + white.Render(" surrogate") + "\n")
	switch {
	case m.training:
		b.WriteString(fmt.Sprintf("  %s epoch %d/%d  loss %.5f  val %.5f\n",
			cyan.Render("training"), m.progress.Epoch, m.progress.Epochs, m.progress.Loss, m.progress.ValLoss))
		b.WriteString("  " + progressBar(m.progress.Epoch, m.progress.Epochs) + "\n")
	case m.trainErr != nil:
		b.WriteString("  " + red.Render("failed: "+m.trainErr.Error()) + "\n")
	case m.store.Ready():
		b.WriteString("  " + green.Render("ready") + dim.Render("  map uses surrogate") + "\n")
	default:
		b.WriteString("  " + dim.Render("not trained (press t)") + "\n")
	}
	return b.String()
}

func ratingStyle(r hydro.Rating) lipgloss.Style {
	switch r {
	case hydro.Stiff:
		return green
	case hydro.Moderate:
		return cyan
	case hydro.Tender:
		return yellow
	default:
		return red
	}
}

func progressBar(done, total int) string {
	const width = 30
	if total <= 0 {
		total = 1
	}
	filled := done * width / total
	return green.Render(strings.Repeat("█", filled)) + dimmer.Render(strings.Repeat("░", width-filled))
}

func (m model) viewCurve() string {
	data := make([]float64, len(m.results.Resistance))
	for i, pt := range m.results.Resistance {
		data[i] = pt.Total
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(70),
		asciigraph.Caption("total resistance (N) vs speed"),
	)
	return dim.Render(graph) + "\n"
}

// viewMap renders the LWL x beam design-space heat map for the
// selected metric. Rows run from max LWL at the top.
func (m model) viewMap() string {
	var b strings.Builder
	b.WriteString(white.Render(" design space map"))
	b.WriteString(dim.Render("  lwl × beam — " + mapMetrics[m.metric]))
	b.WriteString("\n")

	if m.grid == nil {
		b.WriteString(dimmer.Render("  (waiting for surrogate)") + "\n")
		return b.String()
	}

	values := m.grid.GM
	switch m.metric {
	case 1:
		values = m.grid.HullSpeed
	case 2:
		values = m.grid.Draft
	}

	lo, hi := gridRange(values)
	for i := len(m.grid.LWL) - 1; i >= 0; i-- {
		b.WriteString(dim.Render(fmt.Sprintf(" %4.1f ", m.grid.LWL[i])))
		for j := range m.grid.Beam {
			b.WriteString(heatCell(values[i][j], lo, hi))
		}
		b.WriteString("\n")
	}
	b.WriteString(dim.Render(fmt.Sprintf("      %.1f%s%.1f  beam (m)   %s %.2f  %s %.2f\n",
		m.grid.Beam[0],
		strings.Repeat(" ", 2*len(m.grid.Beam)-8),
		m.grid.Beam[len(m.grid.Beam)-1],
		"min", lo, "max", hi)))
	return b.String()
}

func gridRange(values [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range values {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

func heatCell(v, lo, hi float64) string {
	frac := 0.0
	if hi > lo {
		frac = (v - lo) / (hi - lo)
	}
	idx := int(frac * float64(len(heatRamp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(heatRamp[idx])).Render("██")
}
