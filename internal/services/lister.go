package services

import (
	"context"
	"sync"

	"github.com/donapoint/donapoint/internal/logging"
	"github.com/donapoint/donapoint/internal/models"
)

// ListResult is what the Lister hands to the listing view after a fetch
// settles and survives the staleness check.
type ListResult struct {
	Filter models.Filter
	Points []models.DonationPoint
	Err    error
}

// Lister drives the point listing with last-filter-wins semantics. Every
// Apply starts exactly one fetch tagged with a generation number; when a
// fetch settles after a newer filter has been applied, its result is
// discarded rather than shown. Superseded fetches are not aborted at the
// transport level, just ignored.
type Lister struct {
	svc      PointService
	log      logging.Logger
	onResult func(ListResult)

	mu       sync.Mutex
	gen      uint64
	location *models.Location
}

// NewLister wires the lister to the point service. onResult receives each
// winning (or failed-but-current) fetch outcome; it runs on the fetching
// goroutine with the lister's internal lock held, so it must not block or
// call back into the Lister.
func NewLister(svc PointService, log logging.Logger, onResult func(ListResult)) *Lister {
	return &Lister{svc: svc, log: log, onResult: onResult}
}

// SetLocation records the user's location for subsequent fetches. It does
// not trigger a fetch by itself.
func (l *Lister) SetLocation(loc *models.Location) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.location = loc
}

// Apply starts a fetch for the given filter, superseding any fetch still in
// flight. The returned channel closes when this fetch settles, whether its
// result was delivered or discarded.
func (l *Lister) Apply(ctx context.Context, filter models.Filter) <-chan struct{} {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	loc := l.location
	l.mu.Unlock()

	done := make(chan struct{})

	go func() {
		defer close(done)

		points, err := l.svc.List(ctx, filter, loc)

		// The staleness check and the delivery stay under one lock;
		// otherwise a fetch could pass the check, get preempted by a newer
		// Apply+delivery, and land its superseded rows afterwards.
		l.mu.Lock()
		defer l.mu.Unlock()

		if gen != l.gen {
			l.log.Info(ctx, "discarding stale listing result", "generation", gen)
			return
		}

		l.onResult(ListResult{Filter: filter, Points: points, Err: err})
	}()

	return done
}
