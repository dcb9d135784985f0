package records

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"warehouse.GO/api"
	"warehouse.GO/core/cache"
	"warehouse.GO/core/notify"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	"warehouse.GO/model/repository/blob"
	recordService "warehouse.GO/service/records"
	"warehouse.GO/service/spreadsheet"
)

func newServer(t *testing.T) (*echo.Echo, *recordService.Set) {
	t.Helper()
	set, err := recordService.Open(context.Background(), blob.NewCacheBridge(cache.NewCache(), ""), notify.Discard)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	e := echo.New()
	RegisterRecordRoutes(e.Group("/api"), &api.Deps{Records: set})
	return e, set
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestList_Search(t *testing.T) {
	e, _ := newServer(t)
	rec := do(e, http.MethodGet, "/api/client?q=%ED%98%84%EB%8C%80", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Count != 1 {
		t.Errorf("count = %d, want 1", body.Count)
	}
}

func TestCreate(t *testing.T) {
	e, set := newServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"duplicate code", `{"code":"CLI001","name":"현대"}`, http.StatusConflict},
		{"invalid email", `{"code":"CLI003","name":"쌍용","email":"nope"}`, http.StatusBadRequest},
		{"missing code", `{"name":"쌍용"}`, http.StatusBadRequest},
		{"valid", `{"code":"CLI003","name":"쌍용","phone":"031-555-1234"}`, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(e, http.MethodPost, "/api/client", tt.body); rec.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
	if set.Clients.Len() != 3 {
		t.Errorf("clients = %d, want 3", set.Clients.Len())
	}
}

func TestCreate_InboundGetsID(t *testing.T) {
	e, _ := newServer(t)
	rec := do(e, http.MethodPost, "/api/inbound", `{"partNo":"DB850-34010","receivedOn":"2024-06-05","receivedQty":864,"location":"L3-1-03"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		ID   string `json:"id"`
		Zone string `json:"zone"`
	}
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.ID == "" || got.Zone != "L3" {
		t.Errorf("created = %+v, want id and zone L3", got)
	}
}

func TestUpdate_RecomputesVariance(t *testing.T) {
	e, _ := newServer(t)
	rec := do(e, http.MethodPut, "/api/inventory/P005", `{"code":"P005","name":"라디에이터","physical":40,"erp":40,"variance":7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got inventoryEntity.Record
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Variance != 0 || got.Correction != 0 {
		t.Errorf("variance/correction = %d/%d, want 0/0", got.Variance, got.Correction)
	}

	if rec := do(e, http.MethodPut, "/api/inventory/P005", `{"code":"P006"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("mismatched key status = %d, want 400", rec.Code)
	}
	if rec := do(e, http.MethodPut, "/api/inventory/P999", `{"code":"P999"}`); rec.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", rec.Code)
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	e, set := newServer(t)

	if rec := do(e, http.MethodDelete, "/api/outbound/OUT001", ""); rec.Code != http.StatusPreconditionRequired {
		t.Errorf("unconfirmed status = %d, want 428", rec.Code)
	}
	if set.Outbound.Len() != 6 {
		t.Fatalf("unconfirmed delete removed a record")
	}
	if rec := do(e, http.MethodDelete, "/api/outbound/OUT999?confirm=true", ""); rec.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/api/outbound/OUT001?confirm=true", ""); rec.Code != http.StatusNoContent {
		t.Errorf("confirmed status = %d, want 204", rec.Code)
	}
	if set.Outbound.Len() != 5 {
		t.Errorf("outbound = %d, want 5", set.Outbound.Len())
	}
}

func TestExport(t *testing.T) {
	e, _ := newServer(t)
	rec := do(e, http.MethodGet, "/api/inventory/export?format=xlsx", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != spreadsheet.ContentType(spreadsheet.FormatXLSX) {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	rows, err := spreadsheet.Read(context.Background(), bytes.NewReader(rec.Body.Bytes()), spreadsheet.FormatXLSX)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 7 || rows[4]["품번"] != "P005" || rows[4]["오차"] != "5" {
		t.Errorf("rows = %d, row 5 = %v", len(rows), rows[4])
	}
}

func TestImport(t *testing.T) {
	e, set := newServer(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	w.WriteField("mode", "merge")
	part, _ := w.CreateFormFile("file", "suppliers.csv")
	part.Write([]byte("코드,상호,대표자\nSUP003,삼화정밀,최대표\nSUP001,한국철강(주),김철강\n"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/supplier/import", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res recordService.ImportResult
	json.Unmarshal(rec.Body.Bytes(), &res)
	if res.Added != 1 || res.Updated != 1 || res.Mode != recordService.ModeMerge {
		t.Errorf("result = %+v", res)
	}
	if got, _ := set.Suppliers.Store.Get("SUP001"); got.Name != "한국철강(주)" {
		t.Errorf("SUP001 Name = %q", got.Name)
	}
}

func TestImport_RejectsUnknownFormat(t *testing.T) {
	e, _ := newServer(t)
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("file", "notes.txt")
	part.Write([]byte("hello"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/client/import", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
