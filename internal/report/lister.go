package report

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// ListAsteroids prints, for every date in the range, each asteroid's
// name, ID and all of its full close-approach dates.
func (r *Reporter) ListAsteroids(ctx context.Context, startDate, endDate string) error {
	log.Info("listing asteroids", "start", startDate, "end", endDate)

	feed, err := r.src.Feed(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("list asteroids: %w", err)
	}

	for _, date := range feed.Dates() {
		fmt.Fprintf(r.out, "---------- Asteroids approach date: %s ----------\n", date)
		for _, asteroid := range feed.NearEarthObjects[date] {
			fmt.Fprintln(r.out, " ---------- ")
			fmt.Fprintf(r.out, "Name: %s\n", asteroid.Name)
			fmt.Fprintf(r.out, "ID: %s\n", asteroid.ID)
			// Usually a single entry, but the feed allows several.
			for _, approach := range asteroid.CloseApproaches {
				fmt.Fprintf(r.out, "Close approach date (full): %s\n", approach.FullDate)
			}
		}
		fmt.Fprintln(r.out)
	}
	return nil
}
