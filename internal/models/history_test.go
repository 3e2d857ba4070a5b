package models

import (
	"reflect"
	"testing"
)

func TestSortHistoryDesc(t *testing.T) {
	entries := []HistoryEntry{
		{Timestamp: "2024-01-02 08:00:00", Status: "נמכר"},
		{Timestamp: "2024-03-15 12:30:00", Status: "במוסך"},
		{Timestamp: "2023-11-01 09:15:00", Status: "פעיל"},
	}

	SortHistoryDesc(entries)

	want := []string{"2024-03-15 12:30:00", "2024-01-02 08:00:00", "2023-11-01 09:15:00"}
	for i, e := range entries {
		if e.Timestamp != want[i] {
			t.Errorf("entries[%d].Timestamp = %q, want %q", i, e.Timestamp, want[i])
		}
	}
}

func TestSortHistoryDescUnparseableFallsBackToLexical(t *testing.T) {
	entries := []HistoryEntry{
		{Timestamp: "2024-01-01"},
		{Timestamp: "2024-06-01"},
		{Timestamp: "2024-03-01"},
	}

	SortHistoryDesc(entries)

	want := []HistoryEntry{
		{Timestamp: "2024-06-01"},
		{Timestamp: "2024-03-01"},
		{Timestamp: "2024-01-01"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("SortHistoryDesc = %v, want %v", entries, want)
	}
}

func TestSortHistoryDescEmpty(t *testing.T) {
	var entries []HistoryEntry
	SortHistoryDesc(entries)
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0", len(entries))
	}
}
