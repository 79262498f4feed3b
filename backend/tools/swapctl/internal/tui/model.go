package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"swapnet/backend/libs/inventory"
	"swapnet/backend/libs/pinslot"
	"swapnet/backend/libs/prefs"
)

// SlotSource loads the current slot list of a station.
type SlotSource interface {
	FetchSlots(ctx context.Context, stationID int64) ([]pinslot.Slot, error)
}

// Options configures the inventory screen.
type Options struct {
	StationID int64
	Source    SlotSource
	Store     prefs.Store
	Owner     string
	Prefs     prefs.Preferences
	Timeout   time.Duration
	Logger    *zap.Logger
}

// slotsLoadedMsg carries the result of fetch number seq.
type slotsLoadedMsg struct {
	seq   int
	slots []pinslot.Slot
	err   error
}

type prefsSavedMsg struct {
	err error
}

// Model is the bubbletea model of the inventory screen.
type Model struct {
	source  SlotSource
	store   prefs.Store
	owner   string
	timeout time.Duration
	logger  *zap.Logger

	view  *inventory.View
	prefs prefs.Preferences

	keys KeyMap
	help help.Model

	cursor   int
	seq      int
	loading  bool

	// At most one save runs at a time; a toggle during a save marks the
	// latest preferences pending and they are written once it finishes.
	saving      bool
	savePending bool

	notice   string
	width    int
	height   int
	quitting bool
}

// NewModel builds the screen. The first fetch is issued by Init.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return Model{
		source:  opts.Source,
		store:   opts.Store,
		owner:   opts.Owner,
		timeout: timeout,
		logger:  logger,
		view:    inventory.NewView(opts.StationID),
		prefs:   opts.Prefs,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		seq:     1,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch(m.seq)
}

// Selected returns the slot chosen before quitting.
func (m Model) Selected() (int64, bool) {
	return m.view.Selected()
}

// Preferences returns the current view settings.
func (m Model) Preferences() prefs.Preferences {
	return m.prefs
}

func (m Model) filter() inventory.Filter {
	return inventory.Filter{HideUnavailable: m.prefs.HideUnavailable}
}

func (m Model) cards() []inventory.Card {
	return m.view.FilteredCards(m.prefs.Order(), m.filter())
}

func (m Model) columns() int {
	usable := m.width
	if m.prefs.SidebarOpen {
		usable -= 32
	}
	cols := usable / cardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

func (m Model) fetch(seq int) tea.Cmd {
	source, stationID, timeout := m.source, m.view.StationID, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		slots, err := source.FetchSlots(ctx, stationID)
		return slotsLoadedMsg{seq: seq, slots: slots, err: err}
	}
}

// requestSave persists the current preferences, or queues them behind the
// save already in flight.
func (m *Model) requestSave() tea.Cmd {
	if m.store == nil {
		return nil
	}
	if m.saving {
		m.savePending = true
		return nil
	}
	m.saving = true
	return m.savePrefs()
}

func (m Model) savePrefs() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, owner, p, timeout := m.store, m.owner, m.prefs, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return prefsSavedMsg{err: store.Save(ctx, owner, p)}
	}
}
