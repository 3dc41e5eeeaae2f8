// README: Terminal rendering for the planner CLI (titles, tables, itinerary and answer panels).
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/modules/pricing"
)

var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#FF7EB3")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	costStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// Table is a bordered text table. The first column is left aligned, the rest right aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func RenderTitle(title string) string {
	return panelStyle.
		Width(55).
		Align(lipgloss.Center).
		Render(titleStyle.Render(title))
}

func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		line(t.Headers, headerStyle)
		rule("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		line(row, valueStyle)
	}
	rule("╰", "┴", "╯")
	return b.String()
}

// RenderEstimate shows the per-category breakdown for one estimate.
func RenderEstimate(e pricing.CostEstimate) string {
	rows := make([][]string, 0, len(pricing.Categories)+2)
	for _, c := range pricing.Categories {
		perDay := e.Breakdown[c] / int64(e.Days)
		rows = append(rows, []string{string(c), fmt.Sprintf("$%d", perDay), fmt.Sprintf("$%d", e.Breakdown[c])})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", e.PerDay.String(), e.Total.String()})

	return RenderTable(Table{
		Title:   fmt.Sprintf("%s budget, %d %s", e.Tier, e.Days, dayWord(e.Days)),
		Headers: []string{"Category", "Per day", "Trip"},
		Rows:    rows,
	})
}

// RenderTiers shows the static cost table.
func RenderTiers(table map[pricing.Tier]map[pricing.Category]int64) string {
	headers := []string{"Tier"}
	for _, c := range pricing.Categories {
		headers = append(headers, string(c))
	}
	headers = append(headers, "Per day")

	rows := make([][]string, 0, len(table))
	for _, tier := range pricing.Tiers() {
		row := []string{string(tier)}
		var sum int64
		for _, c := range pricing.Categories {
			row = append(row, fmt.Sprintf("$%d", table[tier][c]))
			sum += table[tier][c]
		}
		rows = append(rows, append(row, fmt.Sprintf("$%d", sum)))
	}
	return RenderTable(Table{Title: "Budget tiers (USD)", Headers: headers, Rows: rows})
}

func RenderResult(r *itinerary.Result) string {
	var b strings.Builder
	b.WriteString(RenderTitle("🌍 " + r.City))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %d %s  %s %s  %s %s\n",
		mutedStyle.Render("📆"), r.Days, dayWord(r.Days),
		mutedStyle.Render("💰"), costStyle.Render(r.TotalCost.String()),
		mutedStyle.Render("🎯"), string(r.Budget),
	)
	if len(r.Interests) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", mutedStyle.Render("🎨"), strings.Join(r.Interests, ", "))
	}
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(strings.TrimSpace(r.Itinerary)))
	b.WriteString("\n")
	return b.String()
}

func RenderAnswer(question, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n\n", mutedStyle.Render("💬"), question)
	b.WriteString(headerStyle.Render("AI Travel Assistant:"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(strings.TrimSpace(answer)))
	b.WriteString("\n")
	return b.String()
}

func RenderError(err error) string {
	return errorStyle.Render("✗ ") + valueStyle.Render(err.Error())
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
