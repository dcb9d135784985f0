package records

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"warehouse.GO/core/notify"
	inboundEntity "warehouse.GO/model/entity/inbound"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	outboundEntity "warehouse.GO/model/entity/outbound"
	partnerEntity "warehouse.GO/model/entity/partner"
	"warehouse.GO/model/repository/blob"
)

// Set holds the five record domains of one warehouse.
type Set struct {
	Inbound   *Module[inboundEntity.Record]
	Inventory *Module[inventoryEntity.Record]
	Outbound  *Module[outboundEntity.Record]
	Suppliers *Module[partnerEntity.Record]
	Clients   *Module[partnerEntity.Record]
}

// New builds every domain over one bridge. Records are empty until LoadAll.
func New(b blob.Bridge, n notify.Notifier) *Set {
	return &Set{
		Inbound:   NewInbound(b, n),
		Inventory: NewInventory(b, n),
		Outbound:  NewOutbound(b, n),
		Suppliers: NewSuppliers(b, n),
		Clients:   NewClients(b, n),
	}
}

// Open builds a Set and loads it.
func Open(ctx context.Context, b blob.Bridge, n notify.Notifier) (*Set, error) {
	s := New(b, n)
	return s, s.LoadAll(ctx)
}

// LoadAll loads the domains concurrently. Every domain ends up populated,
// with seed data where its read failed; the first read error is returned.
func (s *Set) LoadAll(ctx context.Context) error {
	var g errgroup.Group
	for _, d := range s.Domains() {
		g.Go(func() error {
			return d.Load(ctx)
		})
	}
	return g.Wait()
}

// Domains returns every domain in menu order.
func (s *Set) Domains() []Domain {
	return []Domain{s.Inbound, s.Inventory, s.Outbound, s.Suppliers, s.Clients}
}

func (s *Set) Domain(name string) (Domain, error) {
	for _, d := range s.Domains() {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown domain %q (want one of %v)", name, Names)
}

// OnChange registers fn on every domain.
func (s *Set) OnChange(fn func(domain string)) {
	for _, d := range s.Domains() {
		d.OnChange(fn)
	}
}
