// Package console holds the application state and controller behind the
// fleet console. Rendering goes through the View interface so the core
// logic (fetch, transform, decide what to render) is testable without a
// terminal attached.
package console

import (
	"github.com/techteamdev9/Fleet-Manager/internal/charts"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

// CanvasID names a chart surface owned by the controller.
type CanvasID int

const (
	// CanvasStatus is the bar chart of per-status vehicle counts.
	CanvasStatus CanvasID = iota
	// CanvasReports is the distribution chart of submitted reports.
	CanvasReports
)

// Localized inline messages for the history panel. The panel substitutes
// these instead of propagating failures or rendering an empty list.
const (
	MsgNoHistory    = "אין היסטוריה לרכב זה"
	MsgHistoryError = "לא ניתן להציג את היסטוריית הרכב כרגע. אנא נסה שנית מאוחר יותר."
)

// User-facing alert texts.
const (
	AlertInvalidCredentials = "Invalid credentials"
	AlertLoginFailed        = "Error logging in"
	AlertAdminsOnly         = "Admins only"
	AlertSelectFirst        = "Select a vehicle first"
	AlertRefreshFailed      = "Error loading vehicles"
	AlertAddFailed          = "Error adding vehicle"
	AlertUpdateFailed       = "Error updating vehicle"
	AlertDeleteFailed       = "Error deleting vehicle"
	ConfirmDelete           = "Delete this vehicle?"
)

// View is the rendering surface the controller drives. Implementations own
// the input controls (login fields, search box, edit form); the controller
// owns every other piece of state and tells the view what to show.
//
// At most one history panel is ever open: RenderHistory and
// RenderHistoryError replace any panel already showing, and CloseHistory
// removes it.
type View interface {
	// Surfaces.
	ShowLogin()
	ShowMain(session models.Session)
	ClearLoginInputs()

	// Role gating: enables or disables every data-mutating control and
	// the license/tool/status inputs as one group.
	SetControlsEnabled(enabled bool)

	// Form and search inputs.
	RenderStatusOptions(statuses []string)
	SetForm(license, tool, status string)
	Form() (license, tool, status string)
	SearchTerm() string
	ResetSearch()

	// Vehicle table.
	RenderVehicleRows(vehicles []models.Vehicle)
	SetActiveRow(id int)

	// History panel, inlined beneath the owning row.
	RenderHistory(id int, entries []models.HistoryEntry)
	RenderHistoryError(id int, message string)
	CloseHistory()

	// Stats and charts.
	RenderStats(snapshot models.StatsSnapshot)
	RenderChart(id CanvasID, chart *charts.Chart)

	// Dialogs.
	Alert(message string)
	Confirm(prompt string) bool
}
