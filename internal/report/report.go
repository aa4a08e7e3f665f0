package report

import (
	"context"
	"io"
	"time"

	"github.com/astronerd/neowatch/internal/model"
)

// FeedSource is the slice of the NeoWs client the reports need.
type FeedSource interface {
	Feed(ctx context.Context, startDate, endDate string) (*model.Feed, error)
}

// Reporter generates the three asteroid reports. Report text goes to
// out (logs stay on stderr); now supplies the hazard scan's notion of
// today and is swapped out in tests.
type Reporter struct {
	src FeedSource
	out io.Writer
	now func() time.Time
}

func New(src FeedSource, out io.Writer) *Reporter {
	return &Reporter{src: src, out: out, now: time.Now}
}
