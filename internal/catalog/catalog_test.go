package catalog

import "testing"

func TestDefaultIsFirstStatus(t *testing.T) {
	if got := Default(); got != Statuses[0] {
		t.Errorf("Default() = %q, want %q", got, Statuses[0])
	}
	if got := Default(); got != "פעיל" {
		t.Errorf("Default() = %q, want %q", got, "פעיל")
	}
}

func TestContains(t *testing.T) {
	for _, s := range Statuses {
		if !Contains(s) {
			t.Errorf("Contains(%q) = false, want true", s)
		}
	}
	if Contains("decommissioned") {
		t.Error("Contains(decommissioned) = true, want false")
	}
	if Contains("") {
		t.Error("Contains(\"\") = true, want false")
	}
}

func TestIndex(t *testing.T) {
	if got := Index("פעיל"); got != 0 {
		t.Errorf("Index(פעיל) = %d, want 0", got)
	}
	if got := Index("במוסך"); got != len(Statuses)-1 {
		t.Errorf("Index(במוסך) = %d, want %d", got, len(Statuses)-1)
	}
	if got := Index("nope"); got != -1 {
		t.Errorf("Index(nope) = %d, want -1", got)
	}
}
