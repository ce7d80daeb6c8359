package cli

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverral/umbra/internal/contract"
	"github.com/mverral/umbra/internal/domain"
)

func TestDashboardModel_LoadAndRender(t *testing.T) {
	m := newDashboardModel(&App{})
	assert.Contains(t, m.View(), "loading")

	view := &contract.DashboardView{
		Type:           "INTJ",
		ShadowFunction: domain.Se,
		CurrentWeek:    1,
		WeekTitle:      "Meeting the Shadow",
		Advance:        contract.AdvanceView{Reason: "complete 5 exercises this week to begin the gate"},
	}
	updated, _ := m.Update(dashboardLoadedMsg{view: view})
	dm, ok := updated.(dashboardModel)
	require.True(t, ok)

	out := dm.View()
	assert.Contains(t, out, "Meeting the Shadow")
	assert.Contains(t, out, "q quit")
}

func TestDashboardModel_Error(t *testing.T) {
	m := newDashboardModel(&App{})
	updated, _ := m.Update(dashboardErrMsg{err: errors.New("store unavailable")})
	dm := updated.(dashboardModel)
	assert.Contains(t, dm.View(), "store unavailable")
}

func TestDashboardModel_QuitKey(t *testing.T) {
	m := newDashboardModel(&App{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
