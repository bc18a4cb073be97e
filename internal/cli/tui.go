package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mkowalik/wayfind/pkg/graph"
	"github.com/mkowalik/wayfind/pkg/search"
)

// List styles
var (
	stepCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stepDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TraceModel - Step-by-step trace replay
// =============================================================================

// TraceModel is the bubbletea model for replaying a search trace. Each
// step shows the node being closed, the path that reached it, and a
// snapshot of the OPEN and CLOSED bookkeeping at that moment.
type TraceModel struct {
	Graph  *graph.Graph
	Result *search.Result
	Step   int
}

// NewTraceModel creates a trace replay model positioned at the first step.
func NewTraceModel(g *graph.Graph, res *search.Result) TraceModel {
	return TraceModel{Graph: g, Result: res}
}

func (m TraceModel) Init() tea.Cmd {
	return nil
}

func (m TraceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "k":
			if m.Step > 0 {
				m.Step--
			}
		case "right", "l", "j", " ", "enter":
			if m.Step < len(m.Result.Trace)-1 {
				m.Step++
			}
		case "home", "g":
			m.Step = 0
		case "end", "G":
			m.Step = len(m.Result.Trace) - 1
		}
	}
	return m, nil
}

func (m TraceModel) View() string {
	var b strings.Builder

	res := m.Result
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s trace: %s %s %s", res.Strategy, res.Start, iconArrow, res.Goal)))
	b.WriteString("\n")
	b.WriteString(stepDimStyle.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(res.Trace) == 0 {
		b.WriteString(stepDimStyle.Render("no trace recorded"))
		return b.String()
	}

	step := res.Trace[m.Step]

	b.WriteString(stepCurrentStyle.Render(fmt.Sprintf("Step %d/%d: close %s", m.Step+1, len(res.Trace), step.Node)))
	b.WriteString("\n")
	b.WriteString(StyleValue.Render("  path  " + strings.Join(step.Path, " "+iconArrow+" ")))
	b.WriteString("\n")
	if res.Strategy == search.AStar {
		b.WriteString(stepDimStyle.Render(fmt.Sprintf("  g=%s  h=%s  f=%s",
			trimFloat(step.G), trimFloat(step.H), trimFloat(step.F))))
	} else {
		b.WriteString(stepDimStyle.Render(fmt.Sprintf("  g=%s", trimFloat(step.G))))
	}
	b.WriteString("\n")

	if nbs := m.Graph.Neighbors(step.Node); len(nbs) > 0 {
		parts := make([]string, len(nbs))
		for i, nb := range nbs {
			parts[i] = fmt.Sprintf("%s(%s)", nb.To, trimFloat(nb.Cost))
		}
		b.WriteString(stepDimStyle.Render("  edges " + strings.Join(parts, "  ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.bookkeepingTable(step))
	b.WriteString("\n\n")

	if m.Step == len(res.Trace)-1 {
		if res.Found() {
			b.WriteString(StyleSuccess.Render(fmt.Sprintf("  goal reached, cost %s", trimFloat(res.Cost))))
		} else {
			b.WriteString(StyleWarning.Render("  frontier exhausted, no path"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// bookkeepingTable renders the OPEN and CLOSED snapshots side by side.
func (m TraceModel) bookkeepingTable(step search.Step) string {
	rows := [][]string{}
	for i := 0; i < len(step.Open) || i < len(step.Closed); i++ {
		var open, closed string
		if i < len(step.Open) {
			open = step.Open[i]
		}
		if i < len(step.Closed) {
			closed = step.Closed[i]
		}
		rows = append(rows, []string{open, closed})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"", ""})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("OPEN", "CLOSED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			cell := lipgloss.NewStyle().Width(16)
			if col == 1 && row < len(step.Closed) && step.Closed[row] == step.Node {
				return cell.Foreground(colorGreen).Bold(true)
			}
			if col == 0 {
				return cell.Foreground(colorWhite)
			}
			return cell.Foreground(colorGray)
		})

	return t.Render()
}

// runTraceUI runs the interactive trace replay until the user quits.
func runTraceUI(g *graph.Graph, res *search.Result) error {
	if len(res.Trace) == 0 {
		printWarning("No trace recorded for this run")
		return nil
	}
	_, err := tea.NewProgram(NewTraceModel(g, res)).Run()
	if err != nil {
		return fmt.Errorf("trace replay: %w", err)
	}
	printSearchSummaryLine(res)
	return nil
}

// printSearchSummaryLine prints the one-line outcome after the replay closes.
func printSearchSummaryLine(res *search.Result) {
	if res.Found() {
		printSuccess("%s: %s (cost %s, %d expanded)",
			res.Strategy, strings.Join(res.Path, " "+iconArrow+" "), trimFloat(res.Cost), res.Expanded)
		return
	}
	printWarning("%s: no path from %s to %s", res.Strategy, res.Start, res.Goal)
}
