package variance

import (
	"errors"
	"math/rand"
	"testing"

	inventoryEntity "warehouse.GO/model/entity/inventory"
)

func TestApply_P005(t *testing.T) {
	r := inventoryEntity.Record{Code: "P005", Physical: 35, ERP: 40}
	Apply(&r)
	if r.Variance != 5 {
		t.Errorf("Variance = %d, want 5", r.Variance)
	}
	if r.Correction != -5 {
		t.Errorf("Correction = %d, want -5", r.Correction)
	}
	if !Flagged(r) {
		t.Error("Flagged = false, want true (physical < ERP)")
	}
	if StateOf(r) != StateUnderstock {
		t.Errorf("StateOf = %s, want understock", StateOf(r))
	}
}

func TestFlagged(t *testing.T) {
	tests := []struct {
		physical, erp int
		want          bool
	}{
		{120, 120, false},
		{35, 40, true},
		{50, 45, true},
		{0, 0, false},
	}
	for _, tt := range tests {
		r := inventoryEntity.Record{Physical: tt.physical, ERP: tt.erp}
		if got := Flagged(r); got != tt.want {
			t.Errorf("Flagged(%d, %d) = %v, want %v", tt.physical, tt.erp, got, tt.want)
		}
	}
}

func TestApply_FormulaHolds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rs := make([]inventoryEntity.Record, 200)
	for i := range rs {
		rs[i] = inventoryEntity.Record{Physical: rng.Intn(10000), ERP: rng.Intn(10000), Variance: rng.Int(), Correction: rng.Int()}
	}
	ApplyAll(rs)
	for _, r := range rs {
		if r.Variance != r.ERP-r.Physical || r.Correction != -r.Variance {
			t.Fatalf("formula broken for %+v", r)
		}
		if err := Check(r); err != nil {
			t.Fatalf("Check after Apply: %v", err)
		}
		if Correction(r.Physical, r.ERP) != r.Correction {
			t.Fatalf("Correction(%d, %d) = %d, want %d", r.Physical, r.ERP, Correction(r.Physical, r.ERP), r.Correction)
		}
	}
}

func TestCheck_Drift(t *testing.T) {
	r := inventoryEntity.Record{Code: "P009", Physical: 10, ERP: 12, Variance: 0}
	if err := Check(r); !errors.Is(err, ErrDrift) {
		t.Errorf("Check = %v, want ErrDrift", err)
	}
}
