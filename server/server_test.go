package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"warehouse.GO/api"
	"warehouse.GO/core/cache"
	"warehouse.GO/core/notify"
	"warehouse.GO/model/repository/blob"
	"warehouse.GO/service/dashboard"
	"warehouse.GO/service/records"
)

func TestNew_MountsModules(t *testing.T) {
	set, err := records.Open(context.Background(), blob.NewCacheBridge(cache.NewCache(), ""), notify.Discard)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	e := New(&api.Deps{Records: set, Dashboard: dashboard.New(set, cache.NewCache(), 0)})

	tests := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/api/inventory", "", http.StatusOK},
		{http.MethodGet, "/api/dashboard", "", http.StatusOK},
		{http.MethodPost, "/api/stock/adjust", `{"code":"P005","quantity":5,"direction":"in"}`, http.StatusOK},
		{http.MethodPost, "/graphql", `{"query":"{ dashboard { totalItems } }"}`, http.StatusOK},
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/records/outbound", "", http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if rec.Header().Get("X-Request-Duration-ms") == "" {
				t.Error("missing X-Request-Duration-ms header")
			}
		})
	}
}
