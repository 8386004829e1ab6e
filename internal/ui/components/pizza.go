package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deepdish/chicagotrail/internal/game"
	"github.com/deepdish/chicagotrail/internal/ui/theme"
)

// PizzaProgress renders the tavern-cut pizza tracker: a square pizza
// cut into four corner slices, one per question slot. Slices fill as
// slots are answered, green for correct and red for wrong.
//
// Slice order follows the corners clockwise from top-left: Q1 top-left,
// Q2 top-right, Q3 bottom-right, Q4 bottom-left.
func PizzaProgress(results []game.QuestionResult) string {
	cells := make([]string, game.SlotCount)
	for i := 0; i < game.SlotCount && i < len(results); i++ {
		cells[i] = sliceCell(i, results[i])
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	grid := strings.Join([]string{
		dim.Render("┌─────┬─────┐"),
		dim.Render("│") + cells[0] + dim.Render("│") + cells[1] + dim.Render("│"),
		dim.Render("├─────┼─────┤"),
		dim.Render("│") + cells[3] + dim.Render("│") + cells[2] + dim.Render("│"),
		dim.Render("└─────┴─────┘"),
	}, "\n")

	answered := 0
	for _, r := range results {
		if r.Answered {
			answered++
		}
	}

	return dim.Render("── TAVERN CUT ──") + "\n" +
		grid + "\n" +
		dim.Render(fmt.Sprintf("     %d/%d", answered, game.SlotCount))
}

func sliceCell(i int, r game.QuestionResult) string {
	if !r.Answered {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" Q%d  ", i+1))
	}
	if r.Correct {
		return theme.Correct.Render("  ★  ")
	}
	return theme.Incorrect.Render("  ✖  ")
}
