package report

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

const (
	hazardousTarget = 3
	lookbackDays    = 30
	dateLayout      = "2006-01-02"
)

type hazardHit struct {
	date string
	name string
}

// ScanRecentHazardous walks one-day windows backward from today, at
// most 30 days, collecting potentially hazardous asteroids until at
// least three are found, then prints everything collected. Finding
// fewer than three within the bound is not an error.
func (r *Reporter) ScanRecentHazardous(ctx context.Context) error {
	today := r.now()
	windowEnd := today
	windowStart := windowEnd.AddDate(0, 0, -1)
	horizon := today.AddDate(0, 0, -lookbackDays)

	log.Info("scanning for hazardous asteroids", "today", today.Format(dateLayout))

	var found []hazardHit

	for len(found) < hazardousTarget && windowStart.After(horizon) {
		startStr := windowStart.Format(dateLayout)
		endStr := windowEnd.Format(dateLayout)

		feed, err := r.src.Feed(ctx, startStr, endStr)
		if err != nil {
			return fmt.Errorf("scan hazardous: %w", err)
		}

		for _, date := range feed.Dates() {
			for _, asteroid := range feed.NearEarthObjects[date] {
				if asteroid.Hazardous {
					found = append(found, hazardHit{date: date, name: asteroid.Name})
				}
			}
			// Enough collected; remaining dates of this response are
			// not examined. Everything appended so far still prints,
			// so one crowded date can push the list past three.
			if len(found) >= hazardousTarget {
				break
			}
		}

		windowEnd = windowEnd.AddDate(0, 0, -1)
		windowStart = windowStart.AddDate(0, 0, -1)
	}

	log.Info("hazard scan finished", "found", len(found))

	fmt.Fprintf(r.out, "The three most recent hazardous asteroids As of today %s are:\n", today.Format(dateLayout))
	for _, hit := range found {
		fmt.Fprintf(r.out, "%s: %s\n", hit.date, hit.name)
	}
	return nil
}
