package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Minimum cell width; wider tiles grow every cell on the board.
const minCellWidth = 6

// tileColors maps tile values to background colours (256-colour palette).
// Values past the table reuse the last entry.
var tileColors = []struct {
	value int
	bg    string
	fg    string
}{
	{2, "230", "235"},
	{4, "229", "235"},
	{8, "215", "232"},
	{16, "209", "232"},
	{32, "203", "255"},
	{64, "196", "255"},
	{128, "221", "235"},
	{256, "220", "235"},
	{512, "214", "235"},
	{1024, "178", "255"},
	{2048, "172", "255"},
	{4096, "93", "255"},
}

var (
	emptyTileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Background(lipgloss.Color("237"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a tile value of the given cell width.
func tileStyle(value, width int) lipgloss.Style {
	base := emptyTileStyle
	if value != 0 {
		c := tileColors[len(tileColors)-1]
		for _, tc := range tileColors {
			if value <= tc.value {
				c = tc
				break
			}
		}
		base = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.fg)).
			Background(lipgloss.Color(c.bg))
	}
	return base.Width(width).Align(lipgloss.Center)
}

// cellWidth returns the cell width large enough for the widest tile.
func cellWidth(cells [][]int) int {
	w := minCellWidth
	for _, row := range cells {
		for _, v := range row {
			w = max(w, len(strconv.Itoa(v))+2)
		}
	}
	return w
}

// renderBoard draws the grid with one styled block per tile.
// Each tile is three lines tall so the value sits in the middle.
func renderBoard(cells [][]int) string {
	width := cellWidth(cells)

	rows := make([]string, 0, len(cells))
	for _, row := range cells {
		blocks := make([]string, 0, len(row)*2)
		for c, v := range row {
			if c > 0 {
				blocks = append(blocks, " ")
			}
			label := "·"
			if v != 0 {
				label = strconv.Itoa(v)
			}
			blocks = append(blocks, tileStyle(v, width).Render("\n"+label+"\n"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, blocks...))
	}

	return boardStyle.Render(strings.Join(rows, "\n"))
}

// renderHUD draws the title line and the session counters.
func renderHUD(snap game.Snapshot, best int) string {
	title := titleStyle.Render(fmt.Sprintf("2048  %dx%d", snap.Height, snap.Width))
	stats := hudStyle.Render(fmt.Sprintf("Score: %d   Best: %d   Moves: %d   Max: %d",
		snap.Score, max(best, snap.Score), snap.Moves, snap.MaxTile))
	return lipgloss.JoinVertical(lipgloss.Left, title, stats)
}

// renderBanner returns the status line, or an empty string while playing.
func renderBanner(snap game.Snapshot) string {
	switch snap.Status {
	case game.StatusOver:
		return bannerStyle.Render(fmt.Sprintf("GAME OVER  max tile %d  press r to restart", snap.MaxTile))
	case game.StatusWon:
		return bannerStyle.Render(fmt.Sprintf("%d reached! Keep going", snap.Target))
	}
	return ""
}

// centerText centers text within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
