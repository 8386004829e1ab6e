package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deepdish/chicagotrail/internal/ui/theme"
)

// AnswerList is the A-D answer selector for one trivia question.
// After submission it locks and highlights the correct and chosen
// options until the reveal ends.
type AnswerList struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewAnswerList creates an AnswerList for a question.
func NewAnswerList(question string, options []string, correctIndex int) AnswerList {
	return AnswerList{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Submitted:    false,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	if a.Submitted {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	case "enter":
		a.Submitted = true
		a.ChosenIndex = a.Selected
	}

	return a, nil
}

// View renders the question and its options.
func (a AnswerList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(a.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range a.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == a.Selected && !a.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case a.Submitted && i == a.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case a.Submitted && i == a.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case a.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == a.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (a AnswerList) IsCorrect() bool {
	return a.Submitted && a.ChosenIndex == a.CorrectIndex
}
