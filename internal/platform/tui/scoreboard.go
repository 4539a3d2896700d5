package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Results panel layout constants
const (
	maxResults     = 50 // Max results to load
	minTableHeight = 3
)

// Scoreboard shows the best recorded results for the current board size.
type Scoreboard struct {
	table   table.Model
	results []storage.Result
	err     error
}

// NewScoreboard creates an empty scoreboard sized for the terminal height.
func NewScoreboard(height int) Scoreboard {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Max", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, minTableHeight)), // Leave room for HUD and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Scoreboard{table: t}
}

// Load fetches results for a board size. A nil store leaves the board empty.
func (sb *Scoreboard) Load(store *storage.Store, height, width int) {
	sb.results = nil
	sb.err = nil
	if store != nil {
		sb.results, sb.err = store.TopResults(height, width, maxResults)
	}

	rows := make([]table.Row, len(sb.results))
	for i, r := range sb.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.MaxTile),
			fmt.Sprintf("%d", r.Moves),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	sb.table.SetRows(rows)
	sb.table.GotoTop()
}

// Rows returns the number of loaded results.
func (sb Scoreboard) Rows() int {
	return len(sb.results)
}

// View renders the table or an explanatory message.
func (sb Scoreboard) View() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if sb.err != nil {
		return tableStyle.Render(fmt.Sprintf("Could not load results:\n%v", sb.err))
	}
	if len(sb.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return tableStyle.Render(emptyStyle.Render("No results recorded yet.\nFinish a game to set one!"))
	}

	return tableStyle.Render(sb.table.View())
}
