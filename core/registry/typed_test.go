package registry

import "testing"

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestAppendList(t *testing.T) {
	r := New()
	Append(r, KeyRegistryAPI, "inventory")
	Append(r, KeyRegistryAPI, "outbound")

	got := List[string](r, KeyRegistryAPI)
	if len(got) != 2 || got[0] != "inventory" || got[1] != "outbound" {
		t.Fatalf("List = %v, want [inventory outbound]", got)
	}
	got[0] = "changed"
	if List[string](r, KeyRegistryAPI)[0] != "inventory" {
		t.Error("List must return a copy")
	}

	r.Lock(KeyRegistryAPI)
	mustPanic(t, "Append after Lock", func() { Append(r, KeyRegistryAPI, "client") })
}

func TestPutLookup(t *testing.T) {
	r := New()
	Put(r, KeyRegistryCron, "dashboardrefresh", "@every 5m")
	Put(r, KeyRegistryCron, "backup", "@daily")

	if v, ok := Lookup[string](r, KeyRegistryCron, "dashboardrefresh"); !ok || v != "@every 5m" {
		t.Errorf("Lookup = %q, %v", v, ok)
	}
	if _, ok := Lookup[string](r, KeyRegistryCron, "missing"); ok {
		t.Error("Lookup missing: want false")
	}
	if names := Names[string](r, KeyRegistryCron); len(names) != 2 || names[0] != "backup" {
		t.Errorf("Names = %v, want sorted [backup dashboardrefresh]", names)
	}
	mustPanic(t, "duplicate Put", func() { Put(r, KeyRegistryCron, "backup", "@hourly") })

	r.Lock(KeyRegistryCron)
	mustPanic(t, "Put after Lock", func() { Put(r, KeyRegistryCron, "late", "@hourly") })

	Delete[string](r, KeyRegistryCron, "backup")
	if r.IsLocked(KeyRegistryCron) {
		t.Error("Delete should unlock the key")
	}
	if len(Entries[string](r, KeyRegistryCron)) != 1 {
		t.Errorf("Entries = %v, want 1", Entries[string](r, KeyRegistryCron))
	}
}

func TestList_WrongTypeIsEmpty(t *testing.T) {
	r := New()
	Append(r, KeyRegistryRoutes, 1)
	if got := List[string](r, KeyRegistryRoutes); len(got) != 0 {
		t.Errorf("List[string] over ints = %v, want empty", got)
	}
}
