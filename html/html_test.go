package html

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"warehouse.GO/core/cache"
	"warehouse.GO/core/notify"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	partnerEntity "warehouse.GO/model/entity/partner"
	"warehouse.GO/model/repository/blob"
	"warehouse.GO/service/dashboard"
	"warehouse.GO/service/records"
	"warehouse.GO/service/variance"
)

func TestTable_ClearAddRowSearch(t *testing.T) {
	tbl := NewTable(PartnerHeaders, PartnerRow)
	tbl.AddRow(partnerEntity.Record{Code: "CLI001", Name: "현대자동차", Items: "엔진 마운트"})
	tbl.AddRow(partnerEntity.Record{Code: "CLI002", Name: "기아자동차"})

	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	if got := tbl.Search("현대"); len(got) != 1 || got[0].Key != "CLI001" {
		t.Errorf("Search(현대) = %+v", got)
	}
	if got := tbl.Search("cli"); len(got) != 2 {
		t.Errorf("Search(cli) = %d rows, want 2", len(got))
	}
	if got := tbl.Search(""); len(got) != 2 {
		t.Errorf("Search(\"\") = %d rows, want 2", len(got))
	}

	tbl.Clear()
	if tbl.Len() != 0 || len(tbl.Search("")) != 0 {
		t.Errorf("after Clear Len = %d", tbl.Len())
	}
}

func TestTable_RowsAreCopies(t *testing.T) {
	tbl := NewTable(PartnerHeaders, PartnerRow)
	tbl.AddRow(partnerEntity.Record{Code: "CLI001", Name: "현대자동차"})

	tbl.Rows()[0].Key = "changed"
	tbl.Search("")[0].Key = "changed"
	if got := tbl.Rows()[0].Key; got != "CLI001" {
		t.Errorf("Key = %q, want CLI001", got)
	}
}

func TestRow_HTMLEscapes(t *testing.T) {
	got := string(Markup(PartnerRow)(partnerEntity.Record{Code: "A&B", Name: "<b>x</b>"}))
	if !strings.Contains(got, `data-key="A&amp;B"`) || !strings.Contains(got, "&lt;b&gt;x&lt;/b&gt;") {
		t.Errorf("HTML = %s", got)
	}
	if strings.Contains(got, "flagged") {
		t.Errorf("partner row should not be flagged: %s", got)
	}
}

func TestInventoryRow(t *testing.T) {
	r := inventoryEntity.Record{Code: "P005", Physical: 35, ERP: 1040, Pallets: decimal.RequireFromString("0.875")}
	variance.Apply(&r)
	row := InventoryRow(r)
	if !row.Flagged {
		t.Error("understocked row not flagged")
	}
	if len(row.Cells) != len(InventoryHeaders) {
		t.Fatalf("cells = %d, headers = %d", len(row.Cells), len(InventoryHeaders))
	}
	if row.Cells[12] != "1,040" || row.Cells[15] != "1,005" || row.Cells[16] != "-1,005" {
		t.Errorf("ERP/variance/correction cells = %q %q %q", row.Cells[12], row.Cells[15], row.Cells[16])
	}
	if row.Cells[11] != "0.88" {
		t.Errorf("pallets cell = %q, want 0.88", row.Cells[11])
	}
}

func TestNumber(t *testing.T) {
	for n, want := range map[int]string{0: "0", 864: "864", 5184: "5,184", -1234567: "-1,234,567"} {
		if got := Number(n); got != want {
			t.Errorf("Number(%d) = %q, want %q", n, got, want)
		}
	}
}

func openSet(t *testing.T) *records.Set {
	t.Helper()
	set, err := records.Open(context.Background(), blob.NewCacheBridge(cache.NewCache(), ""), notify.Discard)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return set
}

func TestRecordsPage(t *testing.T) {
	set := openSet(t)

	p, err := RecordsPage(set, records.Outbound, "아반떼")
	if err != nil {
		t.Fatalf("RecordsPage: %v", err)
	}
	if p.Total != 6 || len(p.Rows) != 2 {
		t.Errorf("Total = %d, Rows = %d; want 6, 2", p.Total, len(p.Rows))
	}

	var buf bytes.Buffer
	if err := NewTemplate().Render(&buf, "records.html", p, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "OUT001") || strings.Contains(out, "OUT002") || !strings.Contains(out, "출고 관리") {
		t.Errorf("rendered page missing expected rows")
	}

	if _, err := RecordsPage(set, "warehouse", ""); err == nil {
		t.Error("RecordsPage(warehouse): want error")
	}
}

func TestDashboardPage_Renders(t *testing.T) {
	set := openSet(t)
	svc := dashboard.New(set, cache.NewCache(), 0)

	var buf bytes.Buffer
	if err := NewTemplate().Render(&buf, "dashboard.html", DashboardPage(svc.Summary()), nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "P005") || !strings.Contains(buf.String(), `class="flagged"`) {
		t.Error("dashboard missing flagged P005 row")
	}
}
