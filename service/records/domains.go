package records

import (
	"github.com/shopspring/decimal"

	"warehouse.GO/core/notify"
	entity "warehouse.GO/model/entity"
	inboundEntity "warehouse.GO/model/entity/inbound"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	outboundEntity "warehouse.GO/model/entity/outbound"
	partnerEntity "warehouse.GO/model/entity/partner"
	"warehouse.GO/model/repository/blob"
	"warehouse.GO/service/normalize"
	"warehouse.GO/service/store"
	"warehouse.GO/service/variance"
)

// Domain names, also used in URLs and CLI arguments.
const (
	Inbound   = "inbound"
	Inventory = "inventory"
	Outbound  = "outbound"
	Supplier  = "supplier"
	Client    = "client"
)

// Names lists the domains in menu order.
var Names = []string{Inbound, Inventory, Outbound, Supplier, Client}

func dec(d decimal.Decimal) float64 { return d.InexactFloat64() }

func NewInbound(b blob.Bridge, n notify.Notifier) *Module[inboundEntity.Record] {
	d := store.Domain[inboundEntity.Record]{
		Name:       Inbound,
		StorageKey: "inboundData",
		Key:        func(r inboundEntity.Record) string { return r.ID },
		SetKey:     func(r *inboundEntity.Record, id string) { r.ID = id },
		Fields: func(r inboundEntity.Record) []string {
			return []string{r.PartNo, r.Item, r.Location, r.Zone, r.Block}
		},
		Seed:    inboundSeed,
		Prepare: func(r *inboundEntity.Record) { r.FillSlot() },
	}
	return &Module[inboundEntity.Record]{
		Store:  store.New(d, b, n),
		Schema: normalize.InboundSchema,
		Sheet:  "입고현황",
		Cells: func(r inboundEntity.Record) map[string]interface{} {
			return map[string]interface{}{
				"receivedOn":      r.ReceivedOn.String(),
				"partNo":          r.PartNo,
				"areaCode":        r.AreaCode,
				"palletCount":     r.PalletCount,
				"item":            r.Item,
				"qtyPerPallet":    r.QtyPerPallet,
				"receivedQty":     r.ReceivedQty,
				"receivedPallets": dec(r.ReceivedPallets),
				"column2":         r.Column2,
				"location":        r.Location,
				"zone":            r.Zone,
				"block":           r.Block,
				"column":          r.Column,
				"partStock":       r.PartStock,
				"stockPallets":    dec(r.StockPallets),
				"note":            r.Note,
				"id":              r.ID,
			}
		},
	}
}

func NewInventory(b blob.Bridge, n notify.Notifier) *Module[inventoryEntity.Record] {
	d := store.Domain[inventoryEntity.Record]{
		Name:       Inventory,
		StorageKey: "inventoryData",
		Key:        func(r inventoryEntity.Record) string { return r.Code },
		Fields: func(r inventoryEntity.Record) []string {
			return []string{r.Code, r.Name, r.Destination}
		},
		Seed:    inventorySeed,
		Prepare: variance.Apply,
	}
	return &Module[inventoryEntity.Record]{
		Store:  store.New(d, b, n),
		Schema: normalize.InventorySchema,
		Sheet:  "재고현황",
		Cells: func(r inventoryEntity.Record) map[string]interface{} {
			return map[string]interface{}{
				"code":           r.Code,
				"tier":           r.Tier,
				"position":       r.Position,
				"name":           r.Name,
				"width":          r.Width,
				"depth":          r.Depth,
				"height":         r.Height,
				"palletCapacity": r.PalletCapacity,
				"leadTime":       r.LeadTime,
				"destination":    r.Destination,
				"physical":       r.Physical,
				"pallets":        dec(r.Pallets),
				"erp":            r.ERP,
				"shippedOut":     r.ShippedOut,
				"receivedIn":     r.ReceivedIn,
				"variance":       r.Variance,
				"correction":     r.Correction,
			}
		},
	}
}

func prepareOutbound(r *outboundEntity.Record) {
	if r.Status.Valid() {
		return
	}
	if st, ok := outboundEntity.ParseStatus(string(r.Status)); ok {
		r.Status = st
		return
	}
	r.Status = outboundEntity.StatusPending
}

func NewOutbound(b blob.Bridge, n notify.Notifier) *Module[outboundEntity.Record] {
	d := store.Domain[outboundEntity.Record]{
		Name:       Outbound,
		StorageKey: "outboundData",
		Key:        func(r outboundEntity.Record) string { return r.ID },
		Fields: func(r outboundEntity.Record) []string {
			return []string{r.ID, r.Client, r.Vehicle, r.PartCode, r.PartName, r.Notes}
		},
		Seed:    outboundSeed,
		Prepare: prepareOutbound,
	}
	return &Module[outboundEntity.Record]{
		Store:  store.New(d, b, n),
		Schema: normalize.OutboundSchema,
		Sheet:  "출고목록",
		Cells: func(r outboundEntity.Record) map[string]interface{} {
			return map[string]interface{}{
				"id":       r.ID,
				"date":     r.Date.String(),
				"client":   r.Client,
				"vehicle":  r.Vehicle,
				"partCode": r.PartCode,
				"partName": r.PartName,
				"quantity": r.Quantity,
				"status":   r.Status.Label(),
				"notes":    r.Notes,
			}
		},
	}
}

func partnerCells(r partnerEntity.Record) map[string]interface{} {
	return map[string]interface{}{
		"code":         r.Code,
		"name":         r.Name,
		"ceo":          r.CEO,
		"businessNo":   r.BusinessNo,
		"phone":        r.Phone,
		"email":        r.Email,
		"address":      r.Address,
		"manager":      r.Manager,
		"managerPhone": r.ManagerPhone,
		"items":        r.Items,
		"notes":        r.Notes,
	}
}

func newPartner(name, key, sheet string, seed func() []partnerEntity.Record, b blob.Bridge, n notify.Notifier) *Module[partnerEntity.Record] {
	d := store.Domain[partnerEntity.Record]{
		Name:       name,
		StorageKey: key,
		Key:        func(r partnerEntity.Record) string { return r.Code },
		Fields: func(r partnerEntity.Record) []string {
			return []string{r.Code, r.Name, r.CEO, r.BusinessNo, r.Items}
		},
		Seed: seed,
	}
	return &Module[partnerEntity.Record]{
		Store:    store.New(d, b, n),
		Schema:   normalize.PartnerSchema.WithDomain(name),
		Sheet:    sheet,
		Cells:    partnerCells,
		Validate: partnerEntity.Record.Validate,
	}
}

func NewSuppliers(b blob.Bridge, n notify.Notifier) *Module[partnerEntity.Record] {
	return newPartner(Supplier, "supplierData", "공급업체목록", supplierSeed, b, n)
}

func NewClients(b blob.Bridge, n notify.Notifier) *Module[partnerEntity.Record] {
	return newPartner(Client, "clientData", "납품처목록", clientSeed, b, n)
}

// date is a seed helper for fixed calendar dates.
func date(s string) entity.Date {
	d, _ := entity.ParseDate(s)
	return d
}
