package booking

import (
	"rental-backend/internal/dateutil"
	"rental-backend/internal/models"
)

// InclusiveBoundaries controls the overlap rule at range edges. With
// inclusive boundaries a rental ending 2025-06-05 conflicts with one
// starting 2025-06-05 on the same car: there is no same-day turnover.
// Kept as a constant so a same-day-handoff policy is a one-line change.
const InclusiveBoundaries = true

// Overlaps reports whether [s1,e1] and [s2,e2] share at least one
// calendar day. Both ranges are inclusive on both ends.
func Overlaps(s1, e1, s2, e2 dateutil.Date) bool {
	if InclusiveBoundaries {
		// s1 <= e2 && s2 <= e1
		return !s1.After(e2) && !s2.After(e1)
	}
	return s1.Before(e2) && s2.Before(e1)
}

// FindConflicts returns the rentals in candidates whose date range
// overlaps [start,end]. Only pending and active rentals count as
// occupying the car; excludeID drops the rental being edited from the
// candidate set (0 excludes nothing). The input order is preserved so
// callers can report conflicts deterministically.
func FindConflicts(start, end dateutil.Date, candidates []*models.Rental, excludeID int) []*models.Rental {
	var conflicts []*models.Rental
	for _, r := range candidates {
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if r.Status != models.RentalStatusPending && r.Status != models.RentalStatusActive {
			continue
		}
		if Overlaps(start, end, r.StartDate, r.EndDate) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}
