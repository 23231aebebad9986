package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/acrispim/shopdash/internal/models"
)

// ErrRefreshInFlight is returned when a refresh cycle is requested while
// another one is still running.
var ErrRefreshInFlight = errors.New("dashboard refresh already in flight")

const (
	failureMessage = "Failed to load dashboard data"
	successMessage = "Dashboard data refreshed"
)

// SnapshotCache receives every published snapshot so consumers outside this
// process can read the latest without recomputing.
type SnapshotCache interface {
	Publish(ctx context.Context, snap Snapshot) error
}

// Config controls the refresher loop.
type Config struct {
	// Interval between automatic refresh cycles.
	Interval time.Duration
	// Now supplies the reference instant for aggregation. Tests pin it.
	Now func() time.Time
}

func DefaultConfig() Config {
	return Config{
		Interval: 30 * time.Second,
		Now:      time.Now,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Interval <= 0 {
		c.Interval = defaults.Interval
	}
	if c.Now == nil {
		c.Now = defaults.Now
	}
	return c
}

// Refresher owns the published Snapshot and runs aggregation cycles: one on
// Start, one per timer tick, and one per manual Refresh call. Cycles are
// serialized by an in-flight flag; a failed cycle never touches the last
// published snapshot.
type Refresher struct {
	fetcher  Fetcher
	notifier Notifier
	cache    SnapshotCache
	log      *logrus.Entry
	cfg      Config

	mu              sync.Mutex
	inFlight        bool
	latest          *Snapshot
	failureNotified bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher builds a refresher. cache may be nil when no external snapshot
// consumer exists.
func NewRefresher(fetcher Fetcher, notifier Notifier, cache SnapshotCache, log *logrus.Entry, cfg Config) *Refresher {
	return &Refresher{
		fetcher:  fetcher,
		notifier: notifier,
		cache:    cache,
		log:      log,
		cfg:      cfg.withDefaults(),
	}
}

// Start runs an initial cycle and then one per interval until Stop is called.
func (r *Refresher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.run(ctx)
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)

	r.runAutomatic(ctx)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runAutomatic(ctx)
		}
	}
}

func (r *Refresher) runAutomatic(ctx context.Context) {
	if err := r.refresh(ctx, false); err != nil && !errors.Is(err, ErrRefreshInFlight) {
		r.log.WithError(err).Warn("automatic dashboard refresh failed")
	}
}

// Stop cancels the timer and waits for any running cycle's goroutine to exit.
// A cycle that was in flight re-checks its context before publishing, so its
// result is discarded. The failure-notification suppression resets here, so a
// restarted refresher notifies again.
func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil

	r.mu.Lock()
	r.failureNotified = false
	r.mu.Unlock()
}

// Refresh runs one manual cycle. Unlike automatic cycles it notifies on every
// outcome: success and failure both.
func (r *Refresher) Refresh(ctx context.Context) error {
	return r.refresh(ctx, true)
}

// Latest returns the last published snapshot, if any cycle has succeeded yet.
func (r *Refresher) Latest() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latest == nil {
		return Snapshot{}, false
	}
	return *r.latest, true
}

func (r *Refresher) refresh(ctx context.Context, manual bool) error {
	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		return ErrRefreshInFlight
	}
	r.inFlight = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inFlight = false
		r.mu.Unlock()
	}()

	snap, err := r.runCycle(ctx)
	if err != nil {
		r.notifyFailure(manual)
		return err
	}

	// The controller may have been torn down while the fetch was running;
	// a late result must not overwrite the published snapshot.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	r.mu.Lock()
	r.latest = &snap
	r.mu.Unlock()

	if r.cache != nil {
		if err := r.cache.Publish(ctx, snap); err != nil {
			r.log.WithError(err).Warn("could not publish snapshot to cache")
		}
	}
	if manual {
		r.notifier.Success(successMessage)
	}
	return nil
}

// runCycle fetches the three collections concurrently and aggregates them.
// If any fetch fails the whole cycle fails and no partial data is used.
func (r *Refresher) runCycle(ctx context.Context) (Snapshot, error) {
	var (
		orders   []models.Order
		products []models.Product
		users    []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = r.fetcher.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = r.fetcher.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = r.fetcher.Users(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("fetch dashboard records: %w", err)
	}

	return Aggregate(orders, products, users, r.cfg.Now()), nil
}

// notifyFailure emits the failure notification. Manual cycles always notify;
// automatic cycles notify once per refresher lifetime.
func (r *Refresher) notifyFailure(manual bool) {
	if manual {
		r.notifier.Failure(failureMessage)
		return
	}

	r.mu.Lock()
	notified := r.failureNotified
	r.failureNotified = true
	r.mu.Unlock()

	if !notified {
		r.notifier.Failure(failureMessage)
	}
}
