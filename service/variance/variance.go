// Package variance reconciles counted stock against the ERP expectation.
package variance

import (
	"errors"
	"fmt"

	inventoryEntity "warehouse.GO/model/entity/inventory"
)

// ErrDrift reports a record whose stored discrepancy fields disagree with its stock figures.
var ErrDrift = errors.New("variance drift")

// Of returns ERP minus physical. Positive means understock.
func Of(physical, erp int) int {
	return erp - physical
}

// Correction returns the adjustment that reconciles physical to ERP stock.
func Correction(physical, erp int) int {
	return -Of(physical, erp)
}

// Apply recomputes Variance and Correction from Physical and ERP.
func Apply(r *inventoryEntity.Record) {
	r.Variance = Of(r.Physical, r.ERP)
	r.Correction = -r.Variance
}

func ApplyAll(rs []inventoryEntity.Record) {
	for i := range rs {
		Apply(&rs[i])
	}
}

// Check returns ErrDrift when r's stored fields do not match the formula.
func Check(r inventoryEntity.Record) error {
	v := Of(r.Physical, r.ERP)
	if r.Variance != v || r.Correction != -v {
		return fmt.Errorf("%w: %s variance=%d correction=%d, want %d/%d", ErrDrift, r.Code, r.Variance, r.Correction, v, -v)
	}
	return nil
}

// Flagged reports whether a record needs attention: understock or any discrepancy.
func Flagged(r inventoryEntity.Record) bool {
	return r.Physical < r.ERP || Of(r.Physical, r.ERP) != 0
}

// State names the discrepancy direction for display.
type State string

const (
	StateBalanced   State = "balanced"
	StateUnderstock State = "understock"
	StateOverstock  State = "overstock"
)

func StateOf(r inventoryEntity.Record) State {
	switch v := Of(r.Physical, r.ERP); {
	case v > 0:
		return StateUnderstock
	case v < 0:
		return StateOverstock
	default:
		return StateBalanced
	}
}
