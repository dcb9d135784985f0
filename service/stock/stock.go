// Package stock moves physical inventory in and out.
package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	inventoryEntity "warehouse.GO/model/entity/inventory"
	"warehouse.GO/service/store"
)

var (
	ErrInvalidQuantity   = errors.New("stock: quantity must be positive")
	ErrInsufficientStock = errors.New("stock: insufficient stock")
	ErrDirection         = errors.New("stock: unknown direction")
)

// Direction is the movement type.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "입고":
		return In, nil
	case "out", "출고", "출하":
		return Out, nil
	}
	return "", fmt.Errorf("%w: %q", ErrDirection, s)
}

// Adjust moves qty units of the item under code. Receiving raises Physical and
// ReceivedIn; shipping lowers Physical and raises ShippedOut. Variance is
// recomputed by the store. A shipment larger than the physical stock is rejected.
func Adjust(ctx context.Context, s *store.Store[inventoryEntity.Record], code string, qty int, dir Direction) (inventoryEntity.Record, error) {
	if qty <= 0 {
		return inventoryEntity.Record{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	return s.Modify(ctx, code, func(r *inventoryEntity.Record) error {
		switch dir {
		case In:
			r.Physical += qty
			r.ReceivedIn += qty
		case Out:
			if r.Physical < qty {
				return fmt.Errorf("%w: %s has %d, requested %d", ErrInsufficientStock, code, r.Physical, qty)
			}
			r.Physical -= qty
			r.ShippedOut += qty
		default:
			return fmt.Errorf("%w: %q", ErrDirection, dir)
		}
		return nil
	})
}
