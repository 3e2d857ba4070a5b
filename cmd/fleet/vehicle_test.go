package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/techteamdev9/Fleet-Manager/internal/catalog"
	"github.com/techteamdev9/Fleet-Manager/internal/models"
)

// writeTestConfig writes a minimal config pointing at the given server and
// returns its path.
func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	content := fmt.Sprintf("server:\n  base_url: %s\n", baseURL)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestVehicleStatusesCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"vehicle", "statuses"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(catalog.Statuses) {
		t.Fatalf("printed %d statuses, want %d", len(lines), len(catalog.Statuses))
	}
	if lines[0] != catalog.Default() {
		t.Errorf("first status = %q, want %q", lines[0], catalog.Default())
	}
}

func TestVehicleListCmd(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			json.NewEncoder(w).Encode(models.Session{Username: "dana", Role: "admin"})
		case "/vehicles":
			gotQuery = r.URL.Query().Get("q")
			json.NewEncoder(w).Encode([]models.Vehicle{
				{ID: 1, LicenseNumber: "111-11-111", ToolCode: "T1", Status: "פעיל"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("secret\n"))
	cmd.SetArgs([]string{
		"vehicle", "list",
		"--config", writeTestConfig(t, srv.URL),
		"--username", "dana",
		"--search", "111",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if gotQuery != "111" {
		t.Errorf("server query = %q, want 111", gotQuery)
	}
	if !strings.Contains(out.String(), "111-11-111") {
		t.Errorf("output missing vehicle:\n%s", out.String())
	}
}

func TestVehicleAddRejectsUnknownStatus(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"vehicle", "add",
		"--license", "111", "--tool", "T1",
		"--status", "bogus",
	})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown status") {
		t.Errorf("Execute error = %v, want unknown status", err)
	}
}

func TestVehicleDeleteAbortsWithoutConfirmation(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/login":
			json.NewEncoder(w).Encode(models.Session{Username: "dana", Role: "admin"})
		case r.Method == http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("secret\nn\n"))
	cmd.SetArgs([]string{
		"vehicle", "delete", "7",
		"--config", writeTestConfig(t, srv.URL),
		"--username", "dana",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if deleted {
		t.Error("delete reached the server without confirmation")
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("output = %q, want Aborted.", out.String())
	}
}

func TestVehicleHistoryCmdSortsDescending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/login":
			json.NewEncoder(w).Encode(models.Session{Username: "dana", Role: "admin"})
		case strings.HasSuffix(r.URL.Path, "/history"):
			json.NewEncoder(w).Encode([]models.HistoryEntry{
				{Timestamp: "2023-05-01 08:00:00", Status: "פעיל"},
				{Timestamp: "2024-05-01 08:00:00", Status: "נמכר"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("secret\n"))
	cmd.SetArgs([]string{
		"vehicle", "history", "7",
		"--config", writeTestConfig(t, srv.URL),
		"--username", "dana",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	first := strings.Index(out.String(), "2024-05-01")
	second := strings.Index(out.String(), "2023-05-01")
	if first == -1 || second == -1 || first > second {
		t.Errorf("history not sorted most recent first:\n%s", out.String())
	}
}
