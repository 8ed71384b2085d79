package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/model"
	"spendwise/internal/tui/components"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 1 // leading space before the first tab

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2
			assert.Equal(t, i, a.tabAtX(x), "active=%d x=%d", active, x)
			pos += w + 2
		}

		// Past the last tab is a miss.
		assert.Equal(t, -1, a.tabAtX(pos+5))
	}
}

func TestKeySwitchesTab(t *testing.T) {
	a := App{loaded: true}

	m, _ := a.Update(keyMsg("b"))
	assert.Equal(t, 1, m.(App).activeTab)

	m, _ = m.(App).Update(keyMsg("t"))
	assert.Equal(t, 3, m.(App).activeTab)

	// Right from the last tab wraps around.
	m, _ = m.(App).Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.(App).activeTab)
}

func TestBracketKeysShiftPeriod(t *testing.T) {
	a := App{loaded: true, period: model.Period{Year: 2026, Month: 3}}

	m, cmd := a.Update(keyMsg("["))
	app := m.(App)
	assert.Equal(t, "2026-02", app.period.String())
	assert.False(t, app.loaded, "period change reloads the snapshot")
	require.NotNil(t, cmd)

	m, _ = app.Update(keyMsg("]"))
	assert.Equal(t, "2026-03", m.(App).period.String())
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	a := App{period: model.Period{Year: 2026, Month: 3}}

	m, _ := a.Update(keyMsg("b"))
	assert.Equal(t, 0, m.(App).activeTab)
	assert.Equal(t, "2026-03", m.(App).period.String())
}

func TestHelpOverlayToggles(t *testing.T) {
	a := App{loaded: true}

	m, _ := a.Update(keyMsg("?"))
	assert.True(t, m.(App).showHelp)

	// Any key closes the overlay without acting.
	m, _ = m.(App).Update(keyMsg("b"))
	app := m.(App)
	assert.False(t, app.showHelp)
	assert.Equal(t, 0, app.activeTab)
}

func TestQuitKeys(t *testing.T) {
	a := App{loaded: true}

	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDataMsgPopulatesSnapshot(t *testing.T) {
	a := App{}

	snap := snapshot{Period: model.Period{Year: 2026, Month: 8}}
	m, _ := a.Update(dataMsg{snap: snap})
	app := m.(App)

	assert.True(t, app.loaded)
	require.NoError(t, app.loadErr)
	assert.Equal(t, "2026-08", app.snap.Period.String())
}
