package registry

import "testing"

func TestRegistry_SetGet(t *testing.T) {
	r := New()
	if _, ok := r.GetGlobal("missing"); ok {
		t.Fatal("GetGlobal missing: want false")
	}
	r.SetGlobal("k", []string{"a"})
	v, ok := r.GetGlobal("k")
	if !ok {
		t.Fatal("GetGlobal: want true")
	}
	if got := v.([]string); len(got) != 1 || got[0] != "a" {
		t.Errorf("GetGlobal = %v, want [a]", got)
	}
}

func TestRegistry_LockUnlock(t *testing.T) {
	r := New()
	if r.IsLocked(KeyRegistryCmd) {
		t.Fatal("new registry should not be locked")
	}
	r.Lock(KeyRegistryCmd)
	if !r.IsLocked(KeyRegistryCmd) {
		t.Error("IsLocked after Lock = false, want true")
	}
	if r.IsLocked(KeyRegistryCron) {
		t.Error("Lock must only affect its own key")
	}
	r.UnlockForTesting(KeyRegistryCmd)
	if r.IsLocked(KeyRegistryCmd) {
		t.Error("IsLocked after UnlockForTesting = true, want false")
	}
}
