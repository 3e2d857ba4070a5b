package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/techteamdev9/Fleet-Manager/internal/api"
	"github.com/techteamdev9/Fleet-Manager/internal/console"
)

type focusArea int

const (
	focusTable focusArea = iota
	focusSearch
	focusForm
)

type formField int

const (
	fieldLicense formField = iota
	fieldTool
	fieldStatus
)

type modal int

const (
	modalNone modal = iota
	modalConfirmDelete
	modalDateFilter
)

// opDoneMsg signals that a controller operation finished; the screen already
// holds whatever the controller decided to render.
type opDoneMsg struct{}

// Model is the Bubble Tea model wrapping the console controller.
type Model struct {
	ctrl   *console.Controller
	scr    *screen
	styles Styles

	width  int
	height int

	focus      focusArea
	field      formField
	modal      modal
	loginField int // 0 username, 1 password

	fromDate string
	toDate   string
	// dateField selects which bound the date modal is editing.
	dateField int
}

// NewModel builds the console TUI against the given API client.
func NewModel(client *api.Client) *Model {
	scr := newScreen()
	ctrl := console.New(client, scr)
	return &Model{
		ctrl:   ctrl,
		scr:    scr,
		styles: DefaultStyles(),
		width:  80,
		height: 24,
	}
}

// Run starts the interactive console and blocks until it exits.
func Run(client *api.Client) error {
	p := tea.NewProgram(NewModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// dispatch runs a controller operation on a command goroutine. The
// controller renders through the screen; the returned message only forces a
// repaint.
func (m *Model) dispatch(fn func(ctx context.Context)) tea.Cmd {
	return func() tea.Msg {
		fn(context.Background())
		return opDoneMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case opDoneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// A pending alert blocks everything until dismissed.
	if m.scr.alertText() != "" {
		m.scr.dismissAlert()
		return m, nil
	}

	if m.modal != modalNone {
		return m.handleModalKey(msg)
	}

	if m.scr.currentSurface() == surfaceLogin {
		return m.handleLoginKey(msg)
	}
	return m.handleMainKey(msg)
}

// --- login surface ---

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.loginField = 1 - m.loginField
		m.scr.focusLogin(m.loginField)
		return m, nil
	case "enter":
		username, password := m.scr.loginValues()
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.Login(ctx, username, password)
		})
	}
	return m, m.scr.updateLoginInput(msg, m.loginField)
}

// --- main surface ---

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusForm:
		return m.handleFormKey(msg)
	}
	return m.handleTableKey(msg)
}

func (m *Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		m.scr.moveCursor(1)
		return m, nil
	case "k", "up":
		m.scr.moveCursor(-1)
		return m, nil

	case "enter", " ":
		v, ok := m.scr.cursorVehicle()
		if !ok {
			return m, nil
		}
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.SelectVehicle(ctx, v.ID)
		})

	case "/":
		m.focus = focusSearch
		m.scr.focusSearch(true)
		return m, nil

	case "e":
		if !m.scr.controlsOn() {
			return m, nil
		}
		m.focus = focusForm
		m.field = fieldLicense
		m.scr.focusFormField(fieldLicense)
		return m, nil

	case "r":
		term := m.scr.SearchTerm()
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.RefreshTable(ctx, term)
		})

	case "x":
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.ClearSearch(ctx)
		})

	case "a":
		if !m.scr.controlsOn() {
			return m, nil
		}
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.AddVehicle(ctx)
		})

	case "u":
		if !m.scr.controlsOn() {
			return m, nil
		}
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.UpdateVehicle(ctx)
		})

	case "d":
		if !m.scr.controlsOn() {
			return m, nil
		}
		if m.scr.activeRowID() == 0 {
			// Let the controller raise its own alert.
			return m, m.dispatch(func(ctx context.Context) {
				m.ctrl.DeleteVehicle(ctx)
			})
		}
		m.modal = modalConfirmDelete
		return m, nil

	case "c":
		m.ctrl.ClearForm()
		return m, nil

	case "s":
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.FetchStats(ctx)
		})

	case "f":
		m.modal = modalDateFilter
		m.dateField = 0
		return m, nil

	case "L":
		m.ctrl.Logout()
		m.focus = focusTable
		m.loginField = 0
		m.scr.focusLogin(0)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.focus = focusTable
		m.scr.focusSearch(false)
		term := m.scr.SearchTerm()
		return m, m.dispatch(func(ctx context.Context) {
			m.ctrl.RefreshTable(ctx, term)
		})
	case "esc":
		m.focus = focusTable
		m.scr.focusSearch(false)
		return m, nil
	}
	return m, m.scr.updateSearchInput(msg)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusTable
		m.scr.blurForm()
		return m, nil

	case "tab", "enter":
		m.field = (m.field + 1) % 3
		m.scr.focusFormField(m.field)
		return m, nil

	case "shift+tab":
		m.field = (m.field + 2) % 3
		m.scr.focusFormField(m.field)
		return m, nil

	case "left", "right":
		if m.field == fieldStatus {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.scr.cycleStatus(delta)
			return m, nil
		}
	}
	if m.field == fieldStatus {
		return m, nil
	}
	return m, m.scr.updateFormInput(msg, m.field)
}

// --- modals ---

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirmDelete:
		switch msg.String() {
		case "y", "Y", "enter":
			m.modal = modalNone
			if !m.scr.controlsOn() {
				return m, nil
			}
			m.scr.armConfirm()
			return m, m.dispatch(func(ctx context.Context) {
				m.ctrl.DeleteVehicle(ctx)
			})
		case "n", "N", "esc":
			m.modal = modalNone
			return m, nil
		}
		return m, nil

	case modalDateFilter:
		switch msg.String() {
		case "esc":
			m.modal = modalNone
			return m, nil
		case "tab", "shift+tab":
			m.dateField = 1 - m.dateField
			return m, nil
		case "enter":
			m.modal = modalNone
			from, to := m.fromDate, m.toDate
			return m, m.dispatch(func(ctx context.Context) {
				m.ctrl.UpdateReportsChart(ctx, from, to)
			})
		case "backspace":
			if m.dateField == 0 && len(m.fromDate) > 0 {
				m.fromDate = m.fromDate[:len(m.fromDate)-1]
			} else if m.dateField == 1 && len(m.toDate) > 0 {
				m.toDate = m.toDate[:len(m.toDate)-1]
			}
			return m, nil
		}
		// Dates are YYYY-MM-DD; accept only the characters that can occur.
		if len(msg.Runes) == 1 {
			r := msg.Runes[0]
			if (r >= '0' && r <= '9') || r == '-' {
				if m.dateField == 0 && len(m.fromDate) < 10 {
					m.fromDate += string(r)
				} else if m.dateField == 1 && len(m.toDate) < 10 {
					m.toDate += string(r)
				}
			}
		}
		return m, nil
	}
	return m, nil
}
