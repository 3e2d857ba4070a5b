package models

import (
	"encoding/json"
	"fmt"
)

// ReportRecord is one submitted report. The server returns reports in two
// shapes depending on the endpoint variant: an object with a "status" field,
// or a positional tuple whose first element is the status. Both decode to
// the same record.
type ReportRecord struct {
	Status string
}

// UnmarshalJSON accepts either {"status": "x", ...} or ["x", ...].
func (r *ReportRecord) UnmarshalJSON(data []byte) error {
	var obj struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Status != nil {
		r.Status = *obj.Status
		return nil
	}

	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err == nil {
		if len(tuple) == 0 {
			return fmt.Errorf("models: empty report tuple")
		}
		var status string
		if err := json.Unmarshal(tuple[0], &status); err != nil {
			return fmt.Errorf("models: report tuple status: %w", err)
		}
		r.Status = status
		return nil
	}

	return fmt.Errorf("models: unrecognized report record shape: %s", data)
}

// CountByStatus tallies report occurrences per status. Records with an empty
// status are counted under the empty key, matching the original grouping.
func CountByStatus(records []ReportRecord) map[string]int {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}
