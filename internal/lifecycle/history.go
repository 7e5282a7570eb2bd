package lifecycle

import (
	"sort"

	"github.com/alcotheque/cellar/internal/model"
)

// AppendEntry returns history with entry appended, unless an existing
// entry shares its (timestamp, newStatus, quantity) key, so duplicate
// submissions from the UI layer collapse to a no-op. Insertion order is
// preserved; nothing here sorts.
func AppendEntry(history []model.StatusHistoryEntry, entry model.StatusHistoryEntry) []model.StatusHistoryEntry {
	for i := range history {
		if history[i].SameKey(entry) {
			return history
		}
	}

	out := make([]model.StatusHistoryEntry, 0, len(history)+1)
	out = append(out, history...)
	return append(out, entry)
}

// Dedup drops later entries that repeat an earlier entry's key. Write-side
// dedup in AppendEntry is the primary defense; this read-side pass guards
// legacy data that already contains duplicates.
func Dedup(history []model.StatusHistoryEntry) []model.StatusHistoryEntry {
	out := make([]model.StatusHistoryEntry, 0, len(history))
	for _, e := range history {
		dup := false
		for i := range out {
			if out[i].SameKey(e) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

// SortedForDisplay returns a deduplicated copy ordered newest first.
// Storage order is untouched.
func SortedForDisplay(history []model.StatusHistoryEntry) []model.StatusHistoryEntry {
	out := Dedup(history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
