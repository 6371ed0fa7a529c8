package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/efskip/pkg/pattern"
)

const (
	// maxTableRows caps the grid of one category; the rest is counted.
	maxTableRows = 12
	columnGap    = 2
)

// Terminal renders patterns as styled terminal output via lipgloss.
// Skip categories are laid out as a grid of names fitted to the width.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		var s string
		switch v := p.(type) {
		case *pattern.Summary:
			s = t.summary(v)
		case *pattern.Leaderboard:
			s = t.leaderboard(v)
		case *pattern.TestTable:
			s = t.category(v)
		}
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) summary(s *pattern.Summary) string {
	lines := make([]string, 0, len(s.Metrics)+1)
	if s.Label != "" {
		lines = append(lines, t.theme.Bold.Render(t.truncate(s.Label, t.width)))
	}
	for _, m := range s.Metrics {
		icon, style := t.kindStyle(m.Kind)
		lines = append(lines, "  "+style.Render(icon+" "+m.Label+": "+m.Value))
	}
	return joinLines(lines)
}

func (t *Terminal) leaderboard(l *pattern.Leaderboard) string {
	if len(l.Items) == 0 {
		return ""
	}
	header := l.Label
	if l.TotalCount > len(l.Items) {
		header += fmt.Sprintf(" (top %d of %d)", len(l.Items), l.TotalCount)
	}
	lines := []string{t.theme.Bold.Render(header)}

	nameW, metricW := 0, 0
	for _, item := range l.Items {
		nameW = max(nameW, runewidth.StringWidth(item.Name))
		metricW = max(metricW, runewidth.StringWidth(item.Metric))
	}
	nameW = min(nameW, t.width/2)

	for _, item := range l.Items {
		lines = append(lines, "  "+
			t.theme.Muted.Render(fmt.Sprintf("%2d. ", item.Rank))+
			t.theme.Primary.Render(runewidth.FillRight(t.truncate(item.Name, nameW), nameW))+
			"  "+
			t.theme.Warning.Render(runewidth.FillLeft(item.Metric, metricW)))
	}
	return joinLines(lines)
}

// category renders one skip category: a header with counts, then the test
// names in as many columns as fit. Flagged entries (non-empty Details) get
// the exhausted icon and the warning color.
func (t *Terminal) category(tt *pattern.TestTable) string {
	if len(tt.Results) == 0 {
		return ""
	}
	icon, style := t.statusStyle(tt.Results[0].Status)
	header := style.Render(icon) + " " + t.theme.Bold.Render(tt.Label)
	flagged := 0
	for _, r := range tt.Results {
		if r.Details != "" {
			flagged++
		}
	}
	if flagged > 0 {
		header += t.theme.Warning.Render(fmt.Sprintf("  %s %d", t.theme.Icons.Exhausted, flagged))
	}
	lines := []string{header}

	// Cell: 2-cell marker slot + name.
	cellW := 0
	for _, r := range tt.Results {
		cellW = max(cellW, runewidth.StringWidth(r.Name)+2)
	}
	avail := t.width - 4
	cellW = min(cellW, max(avail, 8))
	cols := max(1, (avail+columnGap)/(cellW+columnGap))
	rows := (len(tt.Results) + cols - 1) / cols

	shown := rows
	if rows > maxTableRows {
		shown = maxTableRows
	}
	// Column-major, like ls.
	for row := 0; row < shown; row++ {
		cells := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			i := col*rows + row
			if i >= len(tt.Results) {
				break
			}
			cells = append(cells, t.cell(tt.Results[i], cellW))
		}
		lines = append(lines, "    "+strings.Join(cells, strings.Repeat(" ", columnGap)))
	}
	if hidden := len(tt.Results) - countShown(rows, shown, cols, len(tt.Results)); hidden > 0 {
		lines = append(lines, t.theme.Muted.Render(fmt.Sprintf("    ... %d more", hidden)))
	}
	return joinLines(lines)
}

func (t *Terminal) cell(r pattern.TestTableItem, width int) string {
	name := t.truncate(r.Name, width-2)
	if r.Details != "" {
		return t.theme.Warning.Render(runewidth.FillRight(t.theme.Icons.Exhausted+" "+name, width))
	}
	return runewidth.FillRight("  "+name, width)
}

// countShown returns how many of n items appear in the first shown rows of a
// column-major grid with the given rows and cols.
func countShown(rows, shown, cols, n int) int {
	c := 0
	for col := 0; col < cols; col++ {
		for row := 0; row < shown; row++ {
			if col*rows+row < n {
				c++
			}
		}
	}
	return c
}

func (t *Terminal) kindStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Pass, t.theme.Success
	case "error":
		return t.theme.Icons.Fail, t.theme.Error
	case "warning":
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}

func (t *Terminal) statusStyle(status string) (string, lipgloss.Style) {
	switch status {
	case statusFail:
		return t.theme.Icons.Fail, t.theme.Error
	case statusSkip:
		return t.theme.Icons.Warn, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Muted
	}
}

// truncate shortens s to width display cells, ending in "...".
func (t *Terminal) truncate(s string, width int) string {
	if width <= 3 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
