package engine

import "sort"

// ComputeRepRecords indexes the heaviest set at each rep count 1..12 across
// the given sessions. Sessions are scanned in ascending dateKey order and
// only a strictly heavier set displaces a record, so an equal-weight tie is
// held by the earliest date regardless of how the caller ordered the input.
// Rep counts never performed are absent from the result.
func ComputeRepRecords(sessions []Session) map[int]Record {
	ordered := append([]Session(nil), sessions...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DateKey < ordered[j].DateKey
	})

	records := make(map[int]Record)
	for _, w := range ordered {
		for _, s := range w.Sets {
			if s.Reps < MinTrackedReps || s.Reps > MaxTrackedReps {
				continue
			}
			if cur, ok := records[s.Reps]; !ok || s.Weight > cur.Weight {
				records[s.Reps] = Record{Weight: s.Weight, Unit: w.Unit, DateKey: w.DateKey}
			}
		}
	}
	return records
}

// IsNewPersonalRecord reports whether a set saved on dateKey strictly beats
// the exercise's prior record at its rep count. The baseline excludes every
// session on dateKey itself — a PR is measured against history before today.
// A first-ever performance at a rep count is never a PR; only a genuine
// improvement over an established record is.
func IsNewPersonalRecord(sessions []Session, exercise, dateKey string, weight float64, reps int) bool {
	if reps < MinTrackedReps || reps > MaxTrackedReps {
		return false
	}

	var prior []Session
	for _, s := range sessions {
		if s.Exercise == exercise && s.DateKey != dateKey {
			prior = append(prior, s)
		}
	}

	rec, ok := ComputeRepRecords(prior)[reps]
	if !ok {
		return false
	}
	return weight > rec.Weight
}
