package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/astronerd/neowatch/internal/stats"
)

// ErrNoAsteroids is returned when a queried range contains no asteroid
// records, so no velocity statistics can be computed.
var ErrNoAsteroids = errors.New("no asteroids in range")

// AnalyzeVelocities prints the fastest, slowest, mean and median first
// close-approach relative velocity (km/s) over the range.
func (r *Reporter) AnalyzeVelocities(ctx context.Context, startDate, endDate string) error {
	log.Info("analyzing velocities", "start", startDate, "end", endDate)

	feed, err := r.src.Feed(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("analyze velocities: %w", err)
	}

	var velocities []float64
	for _, date := range feed.Dates() {
		for _, asteroid := range feed.NearEarthObjects[date] {
			approach, err := asteroid.FirstApproach()
			if err != nil {
				return fmt.Errorf("analyze velocities: %w", err)
			}
			v, err := approach.VelocityKmPerSec()
			if err != nil {
				return fmt.Errorf("analyze velocities: asteroid %s: %w", asteroid.ID, err)
			}
			velocities = append(velocities, v)
		}
	}

	summary, err := stats.Describe(velocities)
	if err != nil {
		return fmt.Errorf("analyze velocities %s..%s: %w", startDate, endDate, ErrNoAsteroids)
	}

	log.Info("velocity sample collected", "asteroids", len(velocities))

	fmt.Fprintf(r.out, "Fastest velocity: %.2f kilometers_per_second\n", summary.Max)
	fmt.Fprintf(r.out, "Slowest velocity: %.2f kilometers_per_second\n", summary.Min)
	fmt.Fprintf(r.out, "Mean velocity: %.2f kilometers_per_second\n", summary.Mean)
	fmt.Fprintf(r.out, "Median velocity: %.2f kilometers_per_second\n", summary.Median)
	return nil
}
