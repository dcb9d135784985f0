package html

import (
	"fmt"

	"warehouse.GO/service/dashboard"
	"warehouse.GO/service/records"
)

var domainLabels = map[string]string{
	records.Inbound:   "입고 관리",
	records.Inventory: "재고 관리",
	records.Outbound:  "출고 관리",
	records.Supplier:  "공급업체 관리",
	records.Client:    "납품처 관리",
}

type MenuItem struct {
	Href   string
	Label  string
	Active bool
}

// Page is the view model shared by every template.
type Page struct {
	Title   string
	Domain  string
	Menu    []MenuItem
	Headers []string
	Rows    []Row
	Term    string
	Total   int
	Summary *dashboard.Summary
}

func menu(active string) []MenuItem {
	items := []MenuItem{{Href: "/", Label: "대시보드", Active: active == ""}}
	for _, name := range records.Names {
		items = append(items, MenuItem{Href: "/records/" + name, Label: domainLabels[name], Active: active == name})
	}
	return items
}

func view[T any](headers []string, fn RowFunc[T], recs []T, term string) ([]string, []Row, int) {
	t := NewTable(headers, fn)
	t.Fill(recs)
	return t.Headers, t.Search(term), t.Len()
}

// RecordsPage renders one domain's table filtered by term.
func RecordsPage(set *records.Set, domain, term string) (Page, error) {
	p := Page{Title: domainLabels[domain], Domain: domain, Menu: menu(domain), Term: term}
	switch domain {
	case records.Inbound:
		p.Headers, p.Rows, p.Total = view(InboundHeaders, InboundRow, set.Inbound.Store.List(), term)
	case records.Inventory:
		p.Headers, p.Rows, p.Total = view(InventoryHeaders, InventoryRow, set.Inventory.Store.List(), term)
	case records.Outbound:
		p.Headers, p.Rows, p.Total = view(OutboundHeaders, OutboundRow, set.Outbound.Store.List(), term)
	case records.Supplier:
		p.Headers, p.Rows, p.Total = view(PartnerHeaders, PartnerRow, set.Suppliers.Store.List(), term)
	case records.Client:
		p.Headers, p.Rows, p.Total = view(PartnerHeaders, PartnerRow, set.Clients.Store.List(), term)
	default:
		return p, fmt.Errorf("unknown domain %q", domain)
	}
	return p, nil
}

func DashboardPage(sum dashboard.Summary) Page {
	return Page{Title: "대시보드", Menu: menu(""), Summary: &sum}
}
