package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deepdish/chicagotrail/internal/game"
	"github.com/deepdish/chicagotrail/internal/router"
	"github.com/deepdish/chicagotrail/internal/screen"
	"github.com/deepdish/chicagotrail/internal/screens/intro"
	"github.com/deepdish/chicagotrail/internal/screens/trail"
	"github.com/deepdish/chicagotrail/internal/trivia"
	"github.com/deepdish/chicagotrail/internal/ui/layout"
)

// Options carries the dependencies for the TUI.
type Options struct {
	Repo    game.Repo
	Source  trivia.Source
	DateKey string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	dateKey string
	width   int
	height  int
}

// newAppModel creates an AppModel starting at the mission intro.
func newAppModel(opts Options) AppModel {
	introScreen := intro.New(opts.DateKey, func() screen.Screen {
		return trail.New(opts.Repo, opts.Source, opts.DateKey)
	})
	return AppModel{
		router:  router.New(introScreen),
		dateKey: opts.DateKey,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.dateKey, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
