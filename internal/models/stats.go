package models

// StatsSnapshot holds per-status vehicle counts for the current period and
// the previous one. It is re-derived from the server response on every fetch
// and never cached across fetches.
type StatsSnapshot struct {
	Today    map[string]int `json:"today"`
	Previous map[string]int `json:"previous"`
}
