package model

import (
	"sort"
	"time"
)

// Overlaps applies the half-open interval rule to [aStart,aEnd) and
// [bStart,bEnd): back-to-back windows sharing a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflicts returns every blocking booking whose window overlaps
// [start,end), sorted by start time. REJECTED rows and the record identified
// by excludeID never block; excludeID may be empty.
func FindConflicts(start, end time.Time, existing []Booking, excludeID string) []Booking {
	conflicts := []Booking{}

	for _, b := range existing {
		if excludeID != "" && b.ID == excludeID {
			continue
		}

		if !IsBlockingStatus(b.Status) {
			continue
		}

		if Overlaps(start, end, b.StartTime, b.EndTime) {
			conflicts = append(conflicts, b)
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].StartTime.Before(conflicts[j].StartTime)
	})

	return conflicts
}
