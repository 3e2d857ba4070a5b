package models

import (
	"sort"
	"time"
)

// historyTimeLayout matches the timestamp format the server writes for
// history entries.
const historyTimeLayout = "2006-01-02 15:04:05"

// HistoryEntry is one status change in a vehicle's log. The timestamp is
// kept as the server-formatted string and displayed verbatim.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// SortHistoryDesc orders entries most recent first. Entries whose timestamps
// fail to parse are compared lexically, which for the server's
// "YYYY-MM-DD HH:MM:SS" format is the same ordering.
func SortHistoryDesc(entries []HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, erri := time.Parse(historyTimeLayout, entries[i].Timestamp)
		tj, errj := time.Parse(historyTimeLayout, entries[j].Timestamp)
		if erri == nil && errj == nil {
			return ti.After(tj)
		}
		return entries[i].Timestamp > entries[j].Timestamp
	})
}
