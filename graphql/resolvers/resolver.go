package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"warehouse.GO/graphql"
	gqlmodels "warehouse.GO/graphql/models"
	gqlregistry "warehouse.GO/graphql/registry"
	outboundEntity "warehouse.GO/model/entity/outbound"
	"warehouse.GO/service/dashboard"
	"warehouse.GO/service/records"
)

// QueryResolver is the single resolver for all Query fields.
// New fields that cannot live in the schema go through _extension.
type QueryResolver struct {
	set  *records.Set
	dash *dashboard.Service
}

func NewQueryResolver(set *records.Set, dash *dashboard.Service) *QueryResolver {
	return &QueryResolver{set: set, dash: dash}
}

func term(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *QueryResolver) Inbound(ctx context.Context, args graphql.ListArgs) (*gqlmodels.InboundPage, error) {
	items := r.set.Inbound.Store.Search(term(args.Search))
	page, info := paginate(items, args.CurrentPage, args.PageSize)
	out := &gqlmodels.InboundPage{Items: make([]*gqlmodels.Inbound, 0, len(page)), TotalCount: int32(len(items)), PageInfo: info}
	for _, rec := range page {
		out.Items = append(out.Items, mapInbound(rec))
	}
	return out, nil
}

func (r *QueryResolver) Inventory(ctx context.Context, args graphql.ListArgs) (*gqlmodels.InventoryPage, error) {
	items := r.set.Inventory.Store.Search(term(args.Search))
	page, info := paginate(items, args.CurrentPage, args.PageSize)
	out := &gqlmodels.InventoryPage{Items: make([]*gqlmodels.Inventory, 0, len(page)), TotalCount: int32(len(items)), PageInfo: info}
	for _, rec := range page {
		out.Items = append(out.Items, mapInventory(rec))
	}
	return out, nil
}

func (r *QueryResolver) Outbound(ctx context.Context, args graphql.OutboundArgs) (*gqlmodels.OutboundPage, error) {
	items := r.set.Outbound.Store.Search(term(args.Search))
	if args.Status != nil && *args.Status != "" {
		st, ok := outboundEntity.ParseStatus(*args.Status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", *args.Status)
		}
		filtered := items[:0]
		for _, rec := range items {
			if rec.Status == st {
				filtered = append(filtered, rec)
			}
		}
		items = filtered
	}
	page, info := paginate(items, args.CurrentPage, args.PageSize)
	out := &gqlmodels.OutboundPage{Items: make([]*gqlmodels.Outbound, 0, len(page)), TotalCount: int32(len(items)), PageInfo: info}
	for _, rec := range page {
		out.Items = append(out.Items, mapOutbound(rec))
	}
	return out, nil
}

func (r *QueryResolver) Suppliers(ctx context.Context, args graphql.ListArgs) (*gqlmodels.PartnerPage, error) {
	return partnerPage(r.set.Suppliers, args), nil
}

func (r *QueryResolver) Clients(ctx context.Context, args graphql.ListArgs) (*gqlmodels.PartnerPage, error) {
	return partnerPage(r.set.Clients, args), nil
}

func (r *QueryResolver) InventoryItem(ctx context.Context, args struct{ Code string }) (*gqlmodels.Inventory, error) {
	rec, ok := r.set.Inventory.Store.Get(args.Code)
	if !ok {
		return nil, nil
	}
	return mapInventory(rec), nil
}

func (r *QueryResolver) Dashboard(ctx context.Context) (*gqlmodels.Dashboard, error) {
	sum := r.dash.Summary()
	out := &gqlmodels.Dashboard{
		TotalItems:    int32(sum.TotalItems),
		Understock:    int32(sum.Understock),
		Discrepancies: int32(sum.Discrepancies),
		OutOfStock:    int32(sum.OutOfStock),
		TotalPhysical: int32(sum.TotalPhysical),
		InboundCount:  int32(sum.InboundCount),
		OutboundCount: int32(sum.OutboundCount),
		InboundToday:  int32(sum.InboundToday),
		OutboundToday: int32(sum.OutboundToday),
		Suppliers:     int32(sum.Suppliers),
		Clients:       int32(sum.Clients),
		GeneratedAt:   sum.GeneratedAt.Format(time.RFC3339),
	}
	for _, st := range outboundEntity.Statuses {
		out.OutboundByStatus = append(out.OutboundByStatus, &gqlmodels.StatusCount{
			Status: string(st), Label: st.Label(), Count: int32(sum.OutboundByStatus[st]),
		})
	}
	dests := make([]string, 0, len(sum.StockByDestination))
	for d := range sum.StockByDestination {
		dests = append(dests, d)
	}
	sort.Strings(dests)
	for _, d := range dests {
		out.StockByDestination = append(out.StockByDestination, &gqlmodels.DestinationStock{Destination: d, Physical: int32(sum.StockByDestination[d])})
	}
	for _, it := range sum.LowestStock {
		if rec, ok := r.set.Inventory.Store.Get(it.Code); ok {
			out.LowestStock = append(out.LowestStock, mapInventory(rec))
			continue
		}
		out.LowestStock = append(out.LowestStock, &gqlmodels.Inventory{
			Code: it.Code, Name: it.Name, Physical: int32(it.Physical), ERP: int32(it.ERP),
			Variance: int32(it.Variance), Flagged: it.Flagged,
		})
	}
	for _, a := range sum.Recent {
		out.Recent = append(out.Recent, &gqlmodels.Activity{Date: a.Date.String(), Kind: a.Kind, Label: a.Label(), Description: a.Description})
	}
	return out, nil
}

// Extension dispatches to registered custom resolvers.
func (r *QueryResolver) Extension(ctx context.Context, args graphql.ExtensionArgs) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, fmt.Errorf("_extension args: %w", err)
		}
	}
	if graphql.RecordsFromContext(ctx) == nil {
		ctx = graphql.WithRecords(ctx, r.set)
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
