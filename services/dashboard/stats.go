package dashboard

import (
	"time"

	"rmadmin/models"
	"rmadmin/services/cache"
)

const (
	// StatsCacheKey is the single key aggregate stats are cached under.
	StatsCacheKey = "reservas-stats"

	DefaultStatsTTL           = 5 * time.Minute
	DefaultStatsCacheCapacity = 10
)

const dayLayout = "2006-01-02"

// ComputeStats counts the snapshot in a single pass. A record falls in the
// today bucket when its date, read in loc, is the same calendar day as now.
// Dates stored as text without a zone are taken to be in loc.
// Records without a readable date are left out of that bucket only.
func ComputeStats(snap models.Snapshot, now time.Time, loc *time.Location) models.AggregateStats {
	if loc == nil {
		loc = time.Local
	}
	today := now.In(loc).Format(dayLayout)

	stats := models.AggregateStats{Total: len(snap), ComputedAt: now}
	for _, r := range snap {
		if t, ok := r.TimeIn(models.FieldDate, loc); ok && t.In(loc).Format(dayLayout) == today {
			stats.Today++
		}
		switch models.BookingStatus(r) {
		case models.StatusPending:
			stats.Pending++
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusCancelled:
			stats.Cancelled++
		}
		if r.String(models.FieldSource) != "" {
			stats.WithSource++
		}
	}
	return stats
}

// Aggregator derives AggregateStats from the bookings snapshot and keeps the
// last offered value in a short-lived cache.
type Aggregator struct {
	cache *cache.Cache[string, models.AggregateStats]
	ttl   time.Duration
	clock Clock
	loc   *time.Location
}

// NewAggregator wires an aggregator to its cache. A non-positive ttl falls
// back to DefaultStatsTTL.
func NewAggregator(c *cache.Cache[string, models.AggregateStats], ttl time.Duration, clock Clock, loc *time.Location) *Aggregator {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{cache: c, ttl: ttl, clock: clock, loc: loc}
}

// Compute returns fresh stats for snap, bypassing the cache.
func (a *Aggregator) Compute(snap models.Snapshot) models.AggregateStats {
	return ComputeStats(snap, a.clock.Now(), a.loc)
}

// Refresh computes fresh stats and offers them to the cache. The offer is
// taken only when no fresh entry is held, so a cached value may lag the
// snapshot by up to the ttl.
func (a *Aggregator) Refresh(snap models.Snapshot) models.AggregateStats {
	stats := a.Compute(snap)
	if !a.cache.Peek(StatsCacheKey) {
		a.cache.Set(StatsCacheKey, stats, a.ttl)
	}
	return stats
}

// Current returns the cached stats when fresh, otherwise computes them from
// snap and stores the result. The bool reports a cache hit.
func (a *Aggregator) Current(snap models.Snapshot) (models.AggregateStats, bool) {
	if stats, ok := a.cache.Get(StatsCacheKey); ok {
		return stats, true
	}
	stats := a.Compute(snap)
	a.cache.Set(StatsCacheKey, stats, a.ttl)
	return stats, false
}

// Invalidate drops the cached stats.
func (a *Aggregator) Invalidate() {
	a.cache.Delete(StatsCacheKey)
}
