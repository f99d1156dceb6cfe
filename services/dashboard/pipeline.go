package dashboard

import (
	"maps"
	"reflect"
	"time"

	"rmadmin/models"
)

// frame carries one bookings notification through the pipeline stages.
type frame struct {
	snap    models.Snapshot
	version uint64
	stats   models.AggregateStats
	page    models.Page
	pending map[string]models.Status
}

type stage func(frame) frame

// bookingStages runs in this order for every push: stats, then the page,
// then the pending reconcile.
func (s *Session) bookingStages() []stage {
	return []stage{s.statsStage, s.pageStage, s.pendingStage}
}

func runStages(f frame, stages []stage) frame {
	for _, st := range stages {
		f = st(f)
	}
	return f
}

func (s *Session) statsStage(f frame) frame {
	f.stats = s.aggregator.Refresh(f.snap)
	return f
}

func (s *Session) pageStage(f frame) frame {
	f.page = s.paginator.Page(f.snap)
	return f
}

func (s *Session) pendingStage(f frame) frame {
	s.transitions.Reconcile(f.snap)
	f.pending = s.transitions.Pending()
	return f
}

func composeView(f frame, now time.Time) models.View {
	bookings := make([]models.Booking, 0, len(f.page.Records))
	for _, r := range f.page.Records {
		bookings = append(bookings, models.BookingFromRecord(r))
	}
	return models.View{
		Stats:      f.stats,
		Page:       f.page,
		Bookings:   bookings,
		Empty:      len(f.snap) == 0,
		Pending:    f.pending,
		Version:    f.version,
		RenderedAt: now,
	}
}

// sameView reports whether two views would render identically. Timestamps
// and the delivery version are ignored.
func sameView(a, b models.View) bool {
	return a.Empty == b.Empty &&
		a.Stats.Equal(b.Stats) &&
		samePage(a.Page, b.Page) &&
		maps.Equal(a.Pending, b.Pending)
}

func samePage(a, b models.Page) bool {
	if a.Number != b.Number || a.Size != b.Size || a.TotalPages != b.TotalPages ||
		a.TotalRecords != b.TotalRecords || a.Empty != b.Empty || len(a.Records) != len(b.Records) {
		return false
	}
	for i := range a.Records {
		if a.Records[i].ID != b.Records[i].ID || !reflect.DeepEqual(a.Records[i].Fields, b.Records[i].Fields) {
			return false
		}
	}
	return true
}

func productList(snap models.Snapshot, version uint64) models.ProductList {
	products := make([]models.Product, 0, len(snap))
	for _, r := range snap {
		products = append(products, models.ProductFromRecord(r))
	}
	return models.ProductList{Products: products, Empty: len(snap) == 0, Version: version}
}

func sameProducts(a, b models.ProductList) bool {
	return a.Empty == b.Empty && reflect.DeepEqual(a.Products, b.Products)
}
