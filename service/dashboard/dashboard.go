// Package dashboard summarizes the warehouse for the overview page.
package dashboard

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"warehouse.GO/core/cache"
	entity "warehouse.GO/model/entity"
	outboundEntity "warehouse.GO/model/entity/outbound"
	"warehouse.GO/service/records"
	"warehouse.GO/service/variance"
)

const (
	cacheKey = "dashboard:summary"
	cacheTag = "dashboard"
	topN     = 5
	days     = 7
)

// StockItem is one line of the lowest-stock table.
type StockItem struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Physical int    `json:"physical"`
	ERP      int    `json:"erp"`
	Variance int    `json:"variance"`
	Flagged  bool   `json:"flagged"`
}

// Activity is one inbound or outbound event.
type Activity struct {
	Date        entity.Date `json:"date"`
	Kind        string      `json:"kind"`
	Description string      `json:"description"`
}

// Label is the Korean kind shown in the activity table.
func (a Activity) Label() string {
	if a.Kind == records.Inbound {
		return "입고"
	}
	return "출고"
}

// DayCount is the number of inbound and outbound records dated on one day.
type DayCount struct {
	Date     entity.Date `json:"date"`
	Inbound  int         `json:"inbound"`
	Outbound int         `json:"outbound"`
}

// Summary is the dashboard snapshot.
type Summary struct {
	TotalItems         int                           `json:"totalItems"`
	Understock         int                           `json:"understock"`
	Discrepancies      int                           `json:"discrepancies"`
	OutOfStock         int                           `json:"outOfStock"`
	TotalPhysical      int                           `json:"totalPhysical"`
	InboundCount       int                           `json:"inboundCount"`
	OutboundCount      int                           `json:"outboundCount"`
	InboundToday       int                           `json:"inboundToday"`
	OutboundToday      int                           `json:"outboundToday"`
	OutboundByStatus   map[outboundEntity.Status]int `json:"outboundByStatus"`
	Suppliers          int                           `json:"suppliers"`
	Clients            int                           `json:"clients"`
	StockByDestination map[string]int                `json:"stockByDestination"`
	LowestStock        []StockItem                   `json:"lowestStock"`
	Recent             []Activity                    `json:"recent"`
	Daily              []DayCount                    `json:"daily"`
	GeneratedAt        time.Time                     `json:"generatedAt"`
}

type Service struct {
	set   *records.Set
	cache *cache.Cache
	// ttl is in seconds; 0 keeps the summary until the next change.
	ttl int64
	now func() time.Time
	// gen is bumped by Invalidate; a summary computed across a bump is not cached.
	gen atomic.Uint64
}

// New returns a Service that drops its cached summary whenever a record changes.
func New(set *records.Set, c *cache.Cache, ttl int64) *Service {
	s := &Service{set: set, cache: c, ttl: ttl, now: time.Now}
	set.OnChange(func(string) { s.Invalidate() })
	return s
}

// Summary returns the cached snapshot, computing it when absent.
func (s *Service) Summary() Summary {
	if v, ok := s.cache.Get(cacheKey); ok {
		if sum, ok := v.(Summary); ok {
			return sum
		}
	}
	return s.Refresh()
}

// Refresh recomputes and caches the snapshot.
func (s *Service) Refresh() Summary {
	gen := s.gen.Load()
	sum := s.Compute()
	if s.gen.Load() == gen {
		s.cache.Set(cacheKey, sum, s.ttl, []string{cacheTag})
		if s.gen.Load() != gen {
			s.cache.DeleteByTag(cacheTag)
		}
	}
	return sum
}

func (s *Service) Invalidate() {
	s.gen.Add(1)
	s.cache.DeleteByTag(cacheTag)
}

// Compute builds a snapshot from the current records without touching the cache.
func (s *Service) Compute() Summary {
	now := s.now()
	today := entity.DateOf(now)

	inventory := s.set.Inventory.Store.List()
	inbound := s.set.Inbound.Store.List()
	outbound := s.set.Outbound.Store.List()

	sum := Summary{
		TotalItems:         len(inventory),
		InboundCount:       len(inbound),
		OutboundCount:      len(outbound),
		Suppliers:          s.set.Suppliers.Len(),
		Clients:            s.set.Clients.Len(),
		OutboundByStatus:   make(map[outboundEntity.Status]int, len(outboundEntity.Statuses)),
		StockByDestination: make(map[string]int),
		GeneratedAt:        now,
	}
	for _, st := range outboundEntity.Statuses {
		sum.OutboundByStatus[st] = 0
	}

	for _, r := range inventory {
		sum.TotalPhysical += r.Physical
		if r.Physical < r.ERP {
			sum.Understock++
		}
		if variance.Of(r.Physical, r.ERP) != 0 {
			sum.Discrepancies++
		}
		if r.Physical == 0 {
			sum.OutOfStock++
		}
		dest := r.Destination
		if dest == "" {
			dest = "미지정"
		}
		sum.StockByDestination[dest] += r.Physical
	}

	sorted := append(inventory[:0:0], inventory...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Physical < sorted[j].Physical })
	for i, r := range sorted {
		if i == topN {
			break
		}
		sum.LowestStock = append(sum.LowestStock, StockItem{
			Code: r.Code, Name: r.Name, Physical: r.Physical, ERP: r.ERP,
			Variance: r.Variance, Flagged: variance.Flagged(r),
		})
	}

	daily := make(map[string]*DayCount, days)
	for i := days - 1; i >= 0; i-- {
		d := entity.DateOf(now.AddDate(0, 0, -i))
		sum.Daily = append(sum.Daily, DayCount{Date: d})
	}
	for i := range sum.Daily {
		daily[sum.Daily[i].Date.String()] = &sum.Daily[i]
	}

	var activities []Activity
	for _, r := range inbound {
		if r.ReceivedOn.Equal(today) {
			sum.InboundToday++
		}
		if dc, ok := daily[r.ReceivedOn.String()]; ok {
			dc.Inbound++
		}
		activities = append(activities, Activity{
			Date:        r.ReceivedOn,
			Kind:        records.Inbound,
			Description: fmt.Sprintf("%s %s (%d) → %s", r.PartNo, r.Item, r.ReceivedQty, r.Location),
		})
	}
	for _, r := range outbound {
		if r.Date.Equal(today) {
			sum.OutboundToday++
		}
		if dc, ok := daily[r.Date.String()]; ok {
			dc.Outbound++
		}
		sum.OutboundByStatus[r.Status]++
		activities = append(activities, Activity{
			Date:        r.Date,
			Kind:        records.Outbound,
			Description: fmt.Sprintf("%s - %s (%d) %s", r.Client, r.PartName, r.Quantity, r.Status.Label()),
		})
	}
	sort.SliceStable(activities, func(i, j int) bool { return activities[i].Date.After(activities[j].Date.Time) })
	if len(activities) > topN {
		activities = activities[:topN]
	}
	sum.Recent = activities
	return sum
}
