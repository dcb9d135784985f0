package custom

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"warehouse.GO/core/cache"
	"warehouse.GO/core/notify"
	"warehouse.GO/graphql"
	gqlregistry "warehouse.GO/graphql/registry"
	"warehouse.GO/model/repository/blob"
	"warehouse.GO/service/records"
)

func openSet(t *testing.T) *records.Set {
	t.Helper()
	set, err := records.Open(context.Background(), blob.NewCacheBridge(cache.NewCache(), ""), notify.Discard)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return set
}

func TestUnderstock(t *testing.T) {
	got := Understock(openSet(t))
	if len(got) != 1 || got[0].Code != "P005" || got[0].Missing != 5 {
		t.Errorf("Understock = %+v, want P005 missing 5", got)
	}
}

func TestUnderstockExtension(t *testing.T) {
	ctx := graphql.WithRecords(context.Background(), openSet(t))
	out, err := gqlregistry.Resolve(ctx, "understock", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s, ok := out.([]Shortage); !ok || len(s) != 1 {
		t.Errorf("understock = %v", out)
	}
	if _, err := gqlregistry.Resolve(context.Background(), "understock", nil); err == nil {
		t.Error("want error without records in context")
	}
}

func TestLogUnderstock(t *testing.T) {
	served.Store(openSet(t))
	t.Cleanup(func() { served.Store(nil) })

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	logUnderstock()
	if !strings.Contains(buf.String(), "understock: 1 parts below ERP, 5 units missing") {
		t.Errorf("log = %q", buf.String())
	}
}
