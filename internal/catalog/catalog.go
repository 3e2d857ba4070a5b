// Package catalog holds the enumerated vehicle lifecycle statuses.
//
// The catalog is authoritative on the client for populating the status
// selector; the server accepts any label from it without further local
// validation. Insertion order is meaningful: index 0 is the default
// selection for a cleared form.
package catalog

// Statuses lists the valid lifecycle statuses in display order.
var Statuses = []string{
	"פעיל",
	"נמכר",
	"הוצא משימוש",
	"גויס",
	"שוחרר",
	"בדרך לשחרור",
	"נופק",
	"זיכוי",
	"הופץ - תקין",
	"הופץ - לא תקין",
	"במוסך",
}

// Default returns the initial status for a cleared form.
func Default() string {
	return Statuses[0]
}

// Contains reports whether the label is a known catalog status.
func Contains(label string) bool {
	for _, s := range Statuses {
		if s == label {
			return true
		}
	}
	return false
}

// Index returns the position of label in the catalog, or -1.
func Index(label string) int {
	for i, s := range Statuses {
		if s == label {
			return i
		}
	}
	return -1
}
