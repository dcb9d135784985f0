package dashboard

import (
	"context"
	"testing"
	"time"

	"warehouse.GO/core/cache"
	"warehouse.GO/core/notify"
	inboundEntity "warehouse.GO/model/entity/inbound"
	outboundEntity "warehouse.GO/model/entity/outbound"
	"warehouse.GO/model/repository/blob"
	"warehouse.GO/service/records"
)

func newService(t *testing.T) (*Service, *records.Set, *cache.Cache) {
	t.Helper()
	c := cache.NewCache()
	set, err := records.Open(context.Background(), blob.NewCacheBridge(cache.NewCache(), ""), notify.Discard)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s := New(set, c, 0)
	s.now = func() time.Time { return time.Date(2024, 6, 4, 15, 30, 0, 0, time.UTC) }
	return s, set, c
}

func TestCompute_Seeds(t *testing.T) {
	s, _, _ := newService(t)
	sum := s.Compute()

	if sum.TotalItems != 7 || sum.Understock != 1 || sum.Discrepancies != 1 || sum.OutOfStock != 0 {
		t.Errorf("inventory counts = %d/%d/%d/%d, want 7/1/1/0", sum.TotalItems, sum.Understock, sum.Discrepancies, sum.OutOfStock)
	}
	if sum.TotalPhysical != 630 {
		t.Errorf("TotalPhysical = %d, want 630", sum.TotalPhysical)
	}
	if sum.InboundCount != 3 || sum.OutboundCount != 6 || sum.OutboundToday != 2 || sum.InboundToday != 0 {
		t.Errorf("movement counts = %+v", sum)
	}
	if sum.Suppliers != 2 || sum.Clients != 2 {
		t.Errorf("partners = %d/%d, want 2/2", sum.Suppliers, sum.Clients)
	}

	wantStatus := map[outboundEntity.Status]int{
		outboundEntity.StatusPending:    4,
		outboundEntity.StatusInProgress: 1,
		outboundEntity.StatusComplete:   1,
	}
	for st, n := range wantStatus {
		if sum.OutboundByStatus[st] != n {
			t.Errorf("OutboundByStatus[%s] = %d, want %d", st, sum.OutboundByStatus[st], n)
		}
	}

	if sum.StockByDestination["현대자동차 울산공장"] != 395 || sum.StockByDestination["현대자동차 아산공장"] != 235 {
		t.Errorf("StockByDestination = %v", sum.StockByDestination)
	}

	wantLowest := []string{"P005", "P002", "P006", "P004", "P007"}
	if len(sum.LowestStock) != len(wantLowest) {
		t.Fatalf("LowestStock = %d items, want 5", len(sum.LowestStock))
	}
	for i, code := range wantLowest {
		if sum.LowestStock[i].Code != code {
			t.Errorf("LowestStock[%d] = %s, want %s", i, sum.LowestStock[i].Code, code)
		}
	}
	if !sum.LowestStock[0].Flagged {
		t.Error("P005 should be flagged")
	}

	if len(sum.Recent) != 5 || sum.Recent[0].Date.String() != "2024-06-04" || sum.Recent[4].Date.String() != "2024-06-02" {
		t.Errorf("Recent = %+v", sum.Recent)
	}
	if sum.Recent[0].Label() != "출고" {
		t.Errorf("Recent[0] label = %s, want 출고", sum.Recent[0].Label())
	}

	if len(sum.Daily) != 7 || sum.Daily[6].Date.String() != "2024-06-04" || sum.Daily[6].Outbound != 2 || sum.Daily[5].Outbound != 2 {
		t.Errorf("Daily = %+v", sum.Daily)
	}
}

func TestSummary_CachedUntilChange(t *testing.T) {
	s, set, c := newService(t)

	first := s.Summary()
	if _, ok := c.Get(cacheKey); !ok {
		t.Fatal("summary not cached")
	}
	if keys := c.KeysByTag(cacheTag); len(keys) != 1 {
		t.Errorf("tagged keys = %v, want 1", keys)
	}
	if again := s.Summary(); !again.GeneratedAt.Equal(first.GeneratedAt) || again.InboundCount != first.InboundCount {
		t.Errorf("second Summary recomputed: %+v", again)
	}

	if _, err := set.Inbound.Store.Add(context.Background(), inboundEntity.Record{PartNo: "X"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := c.Get(cacheKey); ok {
		t.Error("summary still cached after change")
	}
	if got := s.Summary().InboundCount; got != 4 {
		t.Errorf("InboundCount = %d, want 4", got)
	}
}

func TestRefresh_InvalidatedDuringComputeNotCached(t *testing.T) {
	s, _, c := newService(t)
	base := s.now
	s.now = func() time.Time {
		s.Invalidate()
		return base()
	}
	s.Refresh()
	if _, ok := c.Get(cacheKey); ok {
		t.Error("summary computed across an invalidation was cached")
	}

	s.now = base
	s.Refresh()
	if _, ok := c.Get(cacheKey); !ok {
		t.Error("summary not cached after a clean refresh")
	}
}
