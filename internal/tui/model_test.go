package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/techteamdev9/Fleet-Manager/internal/api"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

// newTestModel builds a model on the main surface. The client points at an
// unreachable address; these tests never execute the returned commands.
func newTestModel(t *testing.T, admin bool) *Model {
	t.Helper()
	client, err := api.New("http://127.0.0.1:0", time.Second)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}

	m := NewModel(client)
	role := "viewer"
	if admin {
		role = "admin"
	}
	m.scr.ShowMain(models.Session{Username: "dana", Role: role})
	m.scr.SetControlsEnabled(admin)
	return m
}

func TestMutationKeysDisabledForNonAdmin(t *testing.T) {
	m := newTestModel(t, false)
	m.scr.RenderVehicleRows([]models.Vehicle{{ID: 1, Status: "פעיל"}})
	m.scr.SetActiveRow(1)

	for _, key := range []string{"a", "u", "d"} {
		_, cmd := m.Update(keyMsg(key))
		if cmd != nil {
			t.Errorf("key %q dispatched a command for non-admin", key)
		}
	}
	if m.modal != modalNone {
		t.Error("delete confirmation opened for non-admin")
	}

	// Form focus is gated the same way.
	m.Update(keyMsg("e"))
	if m.focus != focusTable {
		t.Error("form focus granted to non-admin")
	}
}

func TestDeleteKeyOpensConfirmForAdmin(t *testing.T) {
	m := newTestModel(t, true)
	m.scr.RenderVehicleRows([]models.Vehicle{{ID: 1, Status: "פעיל"}})
	m.scr.SetActiveRow(1)

	_, cmd := m.Update(keyMsg("d"))
	if cmd != nil {
		t.Error("delete dispatched before confirmation")
	}
	if m.modal != modalConfirmDelete {
		t.Errorf("modal = %v, want confirm delete", m.modal)
	}

	// Declining closes the modal without arming the confirm.
	m.Update(keyMsg("n"))
	if m.modal != modalNone {
		t.Error("modal still open after decline")
	}
	if m.scr.Confirm("") {
		t.Error("confirm armed despite decline")
	}
}

func TestDeleteKeyWithoutSelectionDispatches(t *testing.T) {
	m := newTestModel(t, true)

	// The controller owns the no-selection alert, so the key must dispatch
	// instead of opening the confirmation.
	_, cmd := m.Update(keyMsg("d"))
	if cmd == nil {
		t.Error("delete with no selection did not dispatch")
	}
	if m.modal != modalNone {
		t.Error("confirmation opened with no selection")
	}
}
