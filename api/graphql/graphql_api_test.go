package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
	"warehouse.GO/core/cache"
	"warehouse.GO/core/notify"
	gqlregistry "warehouse.GO/graphql/registry"
	"warehouse.GO/model/repository/blob"
	"warehouse.GO/service/dashboard"
	"warehouse.GO/service/records"
)

type response struct {
	Data   map[string]interface{}
	Errors []struct{ Message string }
}

func runQuery(t *testing.T, query string, variables map[string]interface{}) response {
	t.Helper()
	set, err := records.Open(context.Background(), blob.NewCacheBridge(cache.NewCache(), ""), notify.Discard)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	e := echo.New()
	RegisterGraphQLRoutes(e, &api.Deps{Records: set, Dashboard: dashboard.New(set, cache.NewCache(), 0)})

	body := map[string]interface{}{"query": query}
	if variables != nil {
		body["variables"] = variables
	}
	bodyBytes, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestQuery_InventoryPage(t *testing.T) {
	resp := runQuery(t, `query { inventory(pageSize: 3, currentPage: 2) { items { code variance flagged } totalCount pageInfo { totalPages } } }`, nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	inv := resp.Data["inventory"].(map[string]interface{})
	if int(inv["totalCount"].(float64)) != 7 {
		t.Errorf("totalCount = %v, want 7", inv["totalCount"])
	}
	if pi := inv["pageInfo"].(map[string]interface{}); int(pi["totalPages"].(float64)) != 3 {
		t.Errorf("totalPages = %v, want 3", pi["totalPages"])
	}
	items := inv["items"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	p005 := items[1].(map[string]interface{})
	if p005["code"] != "P005" || int(p005["variance"].(float64)) != 5 || p005["flagged"] != true {
		t.Errorf("items[1] = %v, want flagged P005 with variance 5", p005)
	}
}

func TestQuery_OutboundByStatus(t *testing.T) {
	resp := runQuery(t, `query($s: String) { outbound(status: $s) { items { id statusLabel } totalCount } }`, map[string]interface{}{"s": "완료"})
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	out := resp.Data["outbound"].(map[string]interface{})
	items := out["items"].([]interface{})
	if len(items) != 1 || items[0].(map[string]interface{})["statusLabel"] != "완료" {
		t.Errorf("items = %v, want one completed shipment", items)
	}
}

func TestQuery_SearchClients(t *testing.T) {
	resp := runQuery(t, `query { clients(search: "기아") { items { code name } } suppliers { totalCount } }`, nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	items := resp.Data["clients"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 || items[0].(map[string]interface{})["code"] != "CLI002" {
		t.Errorf("clients = %v, want CLI002", items)
	}
	if n := resp.Data["suppliers"].(map[string]interface{})["totalCount"].(float64); n != 2 {
		t.Errorf("suppliers totalCount = %v, want 2", n)
	}
}

func TestQuery_InventoryItemMissing(t *testing.T) {
	resp := runQuery(t, `query { inventoryItem(code: "P999") { code } }`, nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if resp.Data["inventoryItem"] != nil {
		t.Errorf("inventoryItem = %v, want null", resp.Data["inventoryItem"])
	}
}

func TestQuery_Dashboard(t *testing.T) {
	resp := runQuery(t, `query { dashboard { totalItems understock outboundByStatus { status count } lowestStock { code } } }`, nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	d := resp.Data["dashboard"].(map[string]interface{})
	if int(d["totalItems"].(float64)) != 7 || int(d["understock"].(float64)) != 1 {
		t.Errorf("dashboard = %v", d)
	}
	if st := d["outboundByStatus"].([]interface{}); len(st) != 3 {
		t.Errorf("outboundByStatus = %v, want 3 entries", st)
	}
	if low := d["lowestStock"].([]interface{}); len(low) != 5 || low[0].(map[string]interface{})["code"] != "P005" {
		t.Errorf("lowestStock = %v", low)
	}
}

func TestQuery_Extension(t *testing.T) {
	gqlregistry.Register("testCount", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]int{"count": 1}, nil
	})
	defer gqlregistry.Unregister("testCount")

	resp := runQuery(t, `query { _extension(name: "testCount") }`, nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if resp.Data["_extension"] != `{"count":1}` {
		t.Errorf("_extension = %v", resp.Data["_extension"])
	}
}
