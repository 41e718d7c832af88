package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrGridTooLarge is returned by Display when the grid does not fit.
var ErrGridTooLarge = errors.New("grid too large to display")

var (
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	roverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

var headingMarks = [...]string{
	North: "^",
	East:  ">",
	South: "v",
	West:  "<",
}

// Display draws the grid north up with every rover on it. Operational rovers
// are drawn as an arrow along their heading, lost rovers as X at their last
// position. When several rovers share a cell the later one wins.
func (g Grid) Display(rovers []Rover, maxWidth, maxHeight int) (string, error) {
	if g.M < 0 || g.N < 0 {
		return "", fmt.Errorf("display %s: empty grid", g)
	}
	if maxWidth > 0 && g.M+1 > maxWidth || maxHeight > 0 && g.N+1 > maxHeight {
		return "", fmt.Errorf("display %s: %w (limit %dx%d)", g, ErrGridTooLarge, maxWidth, maxHeight)
	}

	marks := make(map[Vector]string, len(rovers))
	for _, r := range rovers {
		if !g.Contains(r.Position()) {
			continue
		}
		if r.Lost() {
			marks[r.Position()] = lostStyle.Render("X")
		} else {
			marks[r.Position()] = roverStyle.Render(headingMarks[r.Orientation()])
		}
	}

	var b strings.Builder
	for y := g.N; y >= 0; y-- {
		for x := 0; x <= g.M; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if m, ok := marks[Vector{x, y}]; ok {
				b.WriteString(m)
			} else {
				b.WriteString(cellStyle.Render("."))
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
