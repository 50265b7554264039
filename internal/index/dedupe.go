package index

import "github.com/Veraticus/papers-index/internal/model"

// Deduplicate keeps one record per ID, preferring the one received last.
//
// records must be ordered oldest to newest. The result is newest to oldest.
// IDs are compared as plain strings, so every record with an empty ID counts
// as the same paper and only the newest of them survives.
func Deduplicate(records []model.RawRecord) []model.RawRecord {
	seen := make(map[string]struct{}, len(records))
	kept := make([]model.RawRecord, 0, len(records))

	for i := len(records) - 1; i >= 0; i-- {
		id := records[i].ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, records[i])
	}

	return kept
}
