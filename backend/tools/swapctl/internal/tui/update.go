package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"swapnet/backend/libs/inventory"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case slotsLoadedMsg:
		if msg.seq != m.seq {
			m.logger.Debug("dropping superseded fetch", zap.Int("seq", msg.seq), zap.Int("latest", m.seq))
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Warn("slot fetch failed", zap.Int64("station_id", m.view.StationID), zap.Error(msg.err))
			m.view.Fail(msg.err)
			return m, nil
		}
		m.view.Load(msg.slots)
		m.clampCursor()

	case prefsSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.logger.Warn("saving preferences failed", zap.Error(msg.err))
			m.notice = "preferences not saved: " + msg.err.Error()
		} else {
			m.notice = ""
		}
		if m.savePending {
			m.savePending = false
			cmd := m.requestSave()
			return m, cmd
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
	case key.Matches(msg, m.keys.Click):
		cards := m.cards()
		if m.cursor < len(cards) {
			m.view.Click(cards[m.cursor].SlotID)
		}
	case key.Matches(msg, m.keys.Deselect):
		m.view.ResetSelection()
	case key.Matches(msg, m.keys.Refresh):
		m.seq++
		m.loading = true
		return m, m.fetch(m.seq)
	case key.Matches(msg, m.keys.Sidebar):
		m.prefs.SidebarOpen = !m.prefs.SidebarOpen
		cmd := m.requestSave()
		return m, cmd
	case key.Matches(msg, m.keys.Order):
		if m.prefs.Order() == inventory.OrderPriority {
			m.prefs.SlotOrder = string(inventory.OrderSlotNumber)
		} else {
			m.prefs.SlotOrder = string(inventory.OrderPriority)
		}
		m.cursor = 0
		cmd := m.requestSave()
		return m, cmd
	case key.Matches(msg, m.keys.Hide):
		m.prefs.HideUnavailable = !m.prefs.HideUnavailable
		m.clampCursor()
		cmd := m.requestSave()
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.cards()) {
		return
	}
	m.cursor = next
}

func (m *Model) clampCursor() {
	n := len(m.cards())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
