package booking

import (
	"testing"
	"time"

	"rental-backend/internal/dateutil"
	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func d(day int) dateutil.Date {
	return dateutil.New(2025, time.June, day)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 dateutil.Date
		want           bool
	}{
		{"disjoint before", d(1), d(3), d(5), d(8), false},
		{"disjoint after", d(10), d(12), d(5), d(8), false},
		{"contained", d(6), d(7), d(5), d(8), true},
		{"containing", d(1), d(30), d(5), d(8), true},
		{"partial front", d(3), d(6), d(5), d(8), true},
		{"partial back", d(7), d(12), d(5), d(8), true},
		{"identical", d(5), d(8), d(5), d(8), true},
		{"shared end/start day", d(1), d(5), d(5), d(10), true},
		{"shared start/end day", d(5), d(10), d(1), d(5), true},
		{"adjacent days", d(1), d(4), d(5), d(8), false},
		{"single-day ranges same day", d(5), d(5), d(5), d(5), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestFindConflicts(t *testing.T) {
	candidates := []*models.Rental{
		{ID: 1, Status: models.RentalStatusPending, StartDate: d(1), EndDate: d(5)},
		{ID: 2, Status: models.RentalStatusActive, StartDate: d(6), EndDate: d(9)},
		{ID: 3, Status: models.RentalStatusCancelled, StartDate: d(1), EndDate: d(30)},
		{ID: 4, Status: models.RentalStatusCompleted, StartDate: d(1), EndDate: d(30)},
	}

	t.Run("terminal rentals never conflict", func(t *testing.T) {
		conflicts := FindConflicts(d(20), d(25), candidates, 0)
		assert.Empty(t, conflicts)
	})

	t.Run("boundary day conflicts", func(t *testing.T) {
		conflicts := FindConflicts(d(5), d(10), candidates, 0)
		assert.Len(t, conflicts, 2)
		assert.Equal(t, 1, conflicts[0].ID)
		assert.Equal(t, 2, conflicts[1].ID)
	})

	t.Run("excludeID drops the rental being edited", func(t *testing.T) {
		conflicts := FindConflicts(d(5), d(10), candidates, 1)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, 2, conflicts[0].ID)
	})

	t.Run("zero excludes nothing", func(t *testing.T) {
		conflicts := FindConflicts(d(3), d(4), candidates, 0)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, 1, conflicts[0].ID)
	})
}
