package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mverral/umbra/internal/cli/formatter"
	"github.com/mverral/umbra/internal/contract"
)

type dashboardKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type dashboardLoadedMsg struct {
	view *contract.DashboardView
}

type dashboardErrMsg struct {
	err error
}

// dashboardModel drives the read-only dashboard TUI: it loads the view,
// renders it, and reloads on demand.
type dashboardModel struct {
	app     *App
	spin    spinner.Model
	view    *contract.DashboardView
	err     error
	loading bool
}

func newDashboardModel(app *App) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	return dashboardModel{app: app, spin: sp, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load())
}

func (m dashboardModel) load() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		view, err := app.Dashboard.GetDashboard(context.Background(), defaultUser, nil)
		if err != nil {
			return dashboardErrMsg{err: err}
		}
		return dashboardLoadedMsg{view: view}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, dashboardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, dashboardKeys.Refresh):
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spin.Tick, m.load())
		}
	case dashboardLoadedMsg:
		m.view = msg.view
		m.loading = false
		return m, nil
	case dashboardErrMsg:
		m.err = msg.err
		m.loading = false
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	footer := formatter.Dim("r refresh · q quit")

	switch {
	case m.loading:
		return m.spin.View() + " loading…\n"
	case m.err != nil:
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n" + footer + "\n"
	case m.view == nil:
		return footer + "\n"
	}
	return formatter.FormatDashboard(m.view) + "\n" + footer + "\n"
}
