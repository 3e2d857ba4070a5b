package console

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/techteamdev9/Fleet-Manager/internal/api"
	"github.com/techteamdev9/Fleet-Manager/internal/catalog"
	"github.com/techteamdev9/Fleet-Manager/internal/charts"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

// ErrNoSelection is returned by operations that require a selected vehicle.
var ErrNoSelection = errors.New("console: no vehicle selected")

// State is the in-memory application state. All of it is volatile: a fresh
// process starts logged out with empty caches.
type State struct {
	Session       *models.Session
	Vehicles      []models.Vehicle
	SelectedID    int // 0 means no selection
	HistoryOpenID int // vehicle whose history panel is open, 0 when closed

	StatusCanvas  charts.Canvas
	ReportsCanvas charts.Canvas
}

// Controller coordinates the session, vehicle directory, history panel,
// charts, and selection against a single View. Methods may be called from
// different goroutines (the TUI dispatches them from command goroutines);
// state is guarded by one mutex. There is no request de-duplication, so
// overlapping triggers can still race at the server like the original.
type Controller struct {
	mu     sync.Mutex
	client *api.Client
	view   View
	state  State
}

// New builds a controller showing the login surface.
func New(client *api.Client, view View) *Controller {
	c := &Controller{client: client, view: view}
	view.ShowLogin()
	return c
}

// Snapshot returns a copy of the current state for inspection.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	if c.state.Session != nil {
		session := *c.state.Session
		s.Session = &session
	}
	s.Vehicles = append([]models.Vehicle(nil), c.state.Vehicles...)
	return s
}

// Login exchanges credentials for a session and brings up the main surface.
// On rejection the view gets a blocking alert and no state changes.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.client.Login(ctx, username, password)
	var se *api.StatusError
	if errors.Is(err, api.ErrUnauthorized) || errors.As(err, &se) {
		// Any non-success response reads as a rejection, not just a 401.
		c.view.Alert(AlertInvalidCredentials)
		return err
	}
	if err != nil {
		c.view.Alert(AlertLoginFailed)
		return err
	}

	c.state.Session = &session
	c.view.ShowMain(session)
	c.view.RenderStatusOptions(catalog.Statuses)
	c.refreshTable(ctx, "")
	c.clearForm()

	// Reset enablement before gating, so a non-admin logout followed by an
	// admin login never inherits disabled controls.
	c.view.SetControlsEnabled(true)
	if !session.IsAdmin() {
		c.view.SetControlsEnabled(false)
	} else {
		c.fetchStats(ctx)
		c.updateReportsChart(ctx, "", "")
	}
	return nil
}

// Logout clears the in-memory identity and returns to the login surface.
// No server call is made; the operation is idempotent.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Session = nil
	c.state.SelectedID = 0
	c.state.HistoryOpenID = 0
	c.view.SetActiveRow(0)
	c.view.CloseHistory()
	c.view.ShowLogin()
	c.view.ClearLoginInputs()
	c.clearForm()
	c.view.SetControlsEnabled(true)
}

// RefreshTable re-fetches the vehicle list with the given search term and
// fully re-renders the table. The in-memory cache is replaced atomically;
// stale rows are always discarded, never diffed.
func (c *Controller) RefreshTable(ctx context.Context, searchTerm string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshTable(ctx, searchTerm)
}

func (c *Controller) refreshTable(ctx context.Context, searchTerm string) error {
	vehicles, err := c.client.Vehicles(ctx, strings.TrimSpace(searchTerm))
	if err != nil {
		c.view.Alert(AlertRefreshFailed)
		return err
	}

	c.state.Vehicles = vehicles
	c.view.RenderVehicleRows(vehicles)

	// The previously selected identity may no longer correspond to a
	// visible row, so the detail panel is forced closed and the selection
	// dropped with it.
	c.state.SelectedID = 0
	c.state.HistoryOpenID = 0
	c.view.SetActiveRow(0)
	c.view.CloseHistory()
	return nil
}

// refreshFromSearch re-fetches using whatever is in the search box, the way
// every post-mutation refresh works.
func (c *Controller) refreshFromSearch(ctx context.Context) error {
	return c.refreshTable(ctx, c.view.SearchTerm())
}

// AddVehicle creates a vehicle from the current form values. Admins only;
// the server independently enforces the same rule.
func (c *Controller) AddVehicle(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Session == nil || !c.state.Session.IsAdmin() {
		c.view.Alert(AlertAdminsOnly)
		return errors.New("console: admins only")
	}

	license, tool, status := c.view.Form()
	payload := models.VehiclePayload{
		LicenseNumber: strings.TrimSpace(license),
		ToolCode:      strings.TrimSpace(tool),
		Status:        status,
	}
	if _, err := c.client.CreateVehicle(ctx, payload); err != nil {
		c.view.Alert(AlertAddFailed)
		return err
	}

	c.refreshFromSearch(ctx)
	c.clearForm()
	c.refreshCharts(ctx)
	return nil
}

// UpdateVehicle sends the full replacement payload for the selected vehicle.
// On failure the alert is generic and the UI keeps the stale data until the
// next explicit refresh.
func (c *Controller) UpdateVehicle(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.SelectedID == 0 {
		c.view.Alert(AlertSelectFirst)
		return ErrNoSelection
	}

	license, tool, status := c.view.Form()
	payload := models.VehiclePayload{
		LicenseNumber: license,
		ToolCode:      tool,
		Status:        status,
	}
	if err := c.client.UpdateVehicle(ctx, c.state.SelectedID, payload); err != nil {
		c.view.Alert(AlertUpdateFailed)
		return err
	}

	c.refreshFromSearch(ctx)
	c.clearForm()
	c.refreshCharts(ctx)
	return nil
}

// DeleteVehicle removes the selected vehicle after interactive confirmation.
// The selection is cleared unconditionally once the request resolves; the
// response status is not consulted, though a transport-level failure still
// surfaces an alert.
func (c *Controller) DeleteVehicle(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.SelectedID == 0 {
		c.view.Alert(AlertSelectFirst)
		return ErrNoSelection
	}
	if !c.view.Confirm(ConfirmDelete) {
		return nil
	}

	err := c.client.DeleteVehicle(ctx, c.state.SelectedID)
	if err != nil {
		c.view.Alert(AlertDeleteFailed)
	}

	c.state.SelectedID = 0
	c.refreshFromSearch(ctx)
	c.clearForm()
	return err
}

// SelectVehicle toggles row selection. Clicking the selected row closes its
// history panel and clears the selection; clicking another row closes any
// open panel first, so at most one panel is ever open.
func (c *Controller) SelectVehicle(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.SelectedID == id {
		c.state.SelectedID = 0
		c.state.HistoryOpenID = 0
		c.view.SetActiveRow(0)
		c.view.CloseHistory()
		return
	}

	c.state.HistoryOpenID = 0
	c.view.CloseHistory()

	vehicle, ok := models.FindVehicle(c.state.Vehicles, id)
	if !ok {
		c.state.SelectedID = 0
		c.view.SetActiveRow(0)
		return
	}

	c.state.SelectedID = id
	c.view.SetActiveRow(id)
	c.view.SetForm(vehicle.LicenseNumber, vehicle.ToolCode, vehicle.Status)
	c.openHistory(ctx, id)
}

// openHistory fetches and renders the vehicle's status log, most recent
// first. Failures are replaced by a localized inline message; the panel is
// never left stuck loading and no error escapes.
func (c *Controller) openHistory(ctx context.Context, id int) {
	entries, err := c.client.History(ctx, id)
	if err != nil {
		c.state.HistoryOpenID = id
		c.view.RenderHistoryError(id, MsgHistoryError)
		return
	}

	models.SortHistoryDesc(entries)
	c.state.HistoryOpenID = id
	c.view.RenderHistory(id, entries)
}

// ClearForm resets the selection, blanks the inputs, returns the status
// selector to its first entry, and closes the detail panel.
func (c *Controller) ClearForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearForm()
}

func (c *Controller) clearForm() {
	c.state.SelectedID = 0
	c.state.HistoryOpenID = 0
	c.view.SetForm("", "", catalog.Default())
	c.view.SetActiveRow(0)
	c.view.CloseHistory()
}

// ClearSearch blanks the search input and refreshes unfiltered.
func (c *Controller) ClearSearch(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.ResetSearch()
	return c.refreshTable(ctx, "")
}

// FetchStats loads today/previous aggregate counts for the logged-in user,
// renders the textual lists, and redraws the status bar chart.
func (c *Controller) FetchStats(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Session == nil {
		return errors.New("console: not logged in")
	}
	return c.fetchStats(ctx)
}

func (c *Controller) fetchStats(ctx context.Context) error {
	snapshot, err := c.client.Stats(ctx, c.state.Session.Username)
	if err != nil {
		// Stats are decorative; keep whatever is on screen.
		log.Printf("console: fetch stats: %v", err)
		return err
	}

	c.view.RenderStats(snapshot)
	chart := c.state.StatusCanvas.Draw(charts.Bar, "Vehicle Status Stats", snapshot.Today)
	c.view.RenderChart(CanvasStatus, chart)
	return nil
}

// UpdateReportsChart fetches report records (date-bounded when both bounds
// are set), tallies them per status, and redraws both charts from the same
// counts. Prior chart instances are destroyed before new ones are drawn, so
// repeated calls leave exactly one chart per canvas.
func (c *Controller) UpdateReportsChart(ctx context.Context, fromDate, toDate string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateReportsChart(ctx, fromDate, toDate)
}

func (c *Controller) updateReportsChart(ctx context.Context, fromDate, toDate string) error {
	records, err := c.client.Reports(ctx, fromDate, toDate)
	if err != nil {
		log.Printf("console: fetch reports: %v", err)
		return err
	}

	counts := models.CountByStatus(records)
	reportsChart := c.state.ReportsCanvas.Draw(charts.Distribution, "Submitted Reports by Vehicle Status", counts)
	c.view.RenderChart(CanvasReports, reportsChart)

	statusChart := c.state.StatusCanvas.Draw(charts.Bar, "Vehicle Status Stats", counts)
	c.view.RenderChart(CanvasStatus, statusChart)
	return nil
}

// refreshCharts redraws both chart views after a mutation.
func (c *Controller) refreshCharts(ctx context.Context) {
	if c.state.Session == nil {
		return
	}
	c.fetchStats(ctx)
	c.updateReportsChart(ctx, "", "")
}
