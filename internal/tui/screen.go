// Package tui is the interactive terminal front-end of the fleet console,
// built on Bubble Tea. The controller drives rendering through the screen
// type, which implements console.View.
package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/techteamdev9/Fleet-Manager/internal/charts"
	"github.com/techteamdev9/Fleet-Manager/internal/console"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

type surface int

const (
	surfaceLogin surface = iota
	surfaceMain
)

// historyPanel is the synthetic row inlined beneath the selected vehicle.
// Either entries or message is set, never both.
type historyPanel struct {
	vehicleID int
	entries   []models.HistoryEntry
	message   string
}

// screen implements console.View. Controller calls arrive from Bubble Tea
// command goroutines while the event loop reads during View, so every
// access goes through the mutex.
type screen struct {
	mu sync.Mutex

	surface         surface
	session         models.Session
	controlsEnabled bool

	// Input controls owned by the view, per the view contract.
	username textinput.Model
	password textinput.Model
	search   textinput.Model
	license  textinput.Model
	tool     textinput.Model

	statuses    []string
	statusIndex int

	vehicles []models.Vehicle
	cursor   int
	activeID int
	history  *historyPanel

	stats        *models.StatsSnapshot
	statusChart  *charts.Chart
	reportsChart *charts.Chart

	alert string
	// confirmArmed pre-answers the next Confirm call. The model shows its
	// confirmation modal before dispatching the destructive action, then
	// arms this so the controller's synchronous Confirm succeeds.
	confirmArmed bool
}

func newScreen() *screen {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	search := textinput.New()
	search.Placeholder = "search license, tool or status"
	search.CharLimit = 64

	license := textinput.New()
	license.Placeholder = "license number"
	license.CharLimit = 64

	tool := textinput.New()
	tool.Placeholder = "tool code"
	tool.CharLimit = 64

	return &screen{
		surface:         surfaceLogin,
		controlsEnabled: true,
		username:        username,
		password:        password,
		search:          search,
		license:         license,
		tool:            tool,
	}
}

// --- console.View implementation ---

func (s *screen) ShowLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface = surfaceLogin
	s.session = models.Session{}
	s.username.Focus()
	s.password.Blur()
}

func (s *screen) ShowMain(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface = surfaceMain
	s.session = session
	s.username.Blur()
	s.password.Blur()
}

func (s *screen) ClearLoginInputs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username.SetValue("")
	s.password.SetValue("")
}

func (s *screen) SetControlsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controlsEnabled = enabled
}

func (s *screen) RenderStatusOptions(statuses []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append([]string(nil), statuses...)
	s.statusIndex = 0
}

func (s *screen) SetForm(license, tool, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.license.SetValue(license)
	s.tool.SetValue(tool)
	s.statusIndex = 0
	for i, label := range s.statuses {
		if label == status {
			s.statusIndex = i
			break
		}
	}
}

func (s *screen) Form() (string, string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := ""
	if len(s.statuses) > 0 {
		status = s.statuses[s.statusIndex]
	}
	return s.license.Value(), s.tool.Value(), status
}

func (s *screen) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search.Value()
}

func (s *screen) ResetSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.SetValue("")
}

func (s *screen) RenderVehicleRows(vehicles []models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append([]models.Vehicle(nil), vehicles...)
	if s.cursor >= len(s.vehicles) {
		s.cursor = len(s.vehicles) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *screen) SetActiveRow(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = id
}

func (s *screen) RenderHistory(id int, entries []models.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(entries) == 0 {
		s.history = &historyPanel{vehicleID: id, message: console.MsgNoHistory}
		return
	}
	s.history = &historyPanel{vehicleID: id, entries: append([]models.HistoryEntry(nil), entries...)}
}

func (s *screen) RenderHistoryError(id int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = &historyPanel{vehicleID: id, message: message}
}

func (s *screen) CloseHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *screen) RenderStats(snapshot models.StatsSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = &snapshot
}

func (s *screen) RenderChart(id console.CanvasID, chart *charts.Chart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch id {
	case console.CanvasStatus:
		s.statusChart = chart
	case console.CanvasReports:
		s.reportsChart = chart
	}
}

func (s *screen) Alert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = message
}

func (s *screen) Confirm(string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	armed := s.confirmArmed
	s.confirmArmed = false
	return armed
}

// armConfirm makes the next Confirm call succeed.
func (s *screen) armConfirm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmArmed = true
}

func (s *screen) dismissAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = ""
}

func (s *screen) alertText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alert
}

// --- input plumbing for the model ---

func (s *screen) loginValues() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username.Value(), s.password.Value()
}

func (s *screen) focusLogin(field int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if field == 0 {
		s.username.Focus()
		s.password.Blur()
	} else {
		s.username.Blur()
		s.password.Focus()
	}
}

func (s *screen) updateLoginInput(msg tea.Msg, field int) tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cmd tea.Cmd
	if field == 0 {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return cmd
}

func (s *screen) focusSearch(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.search.Focus()
	} else {
		s.search.Blur()
	}
}

func (s *screen) updateSearchInput(msg tea.Msg) tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return cmd
}

func (s *screen) focusFormField(field formField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.license.Blur()
	s.tool.Blur()
	switch field {
	case fieldLicense:
		s.license.Focus()
	case fieldTool:
		s.tool.Focus()
	}
}

func (s *screen) blurForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.license.Blur()
	s.tool.Blur()
}

func (s *screen) updateFormInput(msg tea.Msg, field formField) tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cmd tea.Cmd
	switch field {
	case fieldLicense:
		s.license, cmd = s.license.Update(msg)
	case fieldTool:
		s.tool, cmd = s.tool.Update(msg)
	}
	return cmd
}

// activeRowID returns the selected row's vehicle id, 0 when nothing is
// selected. The controller keeps this in sync via SetActiveRow.
func (s *screen) activeRowID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

func (s *screen) controlsOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controlsEnabled
}

// cursorVehicle returns the vehicle under the table cursor.
func (s *screen) cursorVehicle() (models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < 0 || s.cursor >= len(s.vehicles) {
		return models.Vehicle{}, false
	}
	return s.vehicles[s.cursor], true
}

func (s *screen) moveCursor(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.vehicles) {
		s.cursor = len(s.vehicles) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *screen) cycleStatus(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.statuses) == 0 {
		return
	}
	s.statusIndex = (s.statusIndex + delta + len(s.statuses)) % len(s.statuses)
}

func (s *screen) currentSurface() surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface
}

func (s *screen) isAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsAdmin()
}
