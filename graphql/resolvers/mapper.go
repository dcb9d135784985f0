package resolvers

import (
	"warehouse.GO/graphql"
	gqlmodels "warehouse.GO/graphql/models"
	inboundEntity "warehouse.GO/model/entity/inbound"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	outboundEntity "warehouse.GO/model/entity/outbound"
	partnerEntity "warehouse.GO/model/entity/partner"
	"warehouse.GO/service/records"
	"warehouse.GO/service/variance"
)

func mapInbound(r inboundEntity.Record) *gqlmodels.Inbound {
	return &gqlmodels.Inbound{
		ID:              r.ID,
		ReceivedOn:      r.ReceivedOn.String(),
		PartNo:          r.PartNo,
		AreaCode:        r.AreaCode,
		PalletCount:     int32(r.PalletCount),
		Item:            r.Item,
		QtyPerPallet:    int32(r.QtyPerPallet),
		ReceivedQty:     int32(r.ReceivedQty),
		ReceivedPallets: r.ReceivedPallets.InexactFloat64(),
		Location:        r.Location,
		Zone:            r.Zone,
		Block:           r.Block,
		Column:          r.Column,
		PartStock:       int32(r.PartStock),
		StockPallets:    r.StockPallets.InexactFloat64(),
		Note:            r.Note,
	}
}

func mapInventory(r inventoryEntity.Record) *gqlmodels.Inventory {
	return &gqlmodels.Inventory{
		Code:        r.Code,
		Tier:        r.Tier,
		Position:    r.Position,
		Name:        r.Name,
		Destination: r.Destination,
		Physical:    int32(r.Physical),
		Pallets:     r.Pallets.InexactFloat64(),
		ERP:         int32(r.ERP),
		ShippedOut:  int32(r.ShippedOut),
		ReceivedIn:  int32(r.ReceivedIn),
		Variance:    int32(r.Variance),
		Correction:  int32(r.Correction),
		Flagged:     variance.Flagged(r),
	}
}

func mapOutbound(r outboundEntity.Record) *gqlmodels.Outbound {
	return &gqlmodels.Outbound{
		ID:          r.ID,
		Date:        r.Date.String(),
		Client:      r.Client,
		Vehicle:     r.Vehicle,
		PartCode:    r.PartCode,
		PartName:    r.PartName,
		Quantity:    int32(r.Quantity),
		Status:      string(r.Status),
		StatusLabel: r.Status.Label(),
		Notes:       r.Notes,
	}
}

func mapPartner(r partnerEntity.Record) *gqlmodels.Partner {
	return &gqlmodels.Partner{
		Code:         r.Code,
		Name:         r.Name,
		CEO:          r.CEO,
		BusinessNo:   r.BusinessNo,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		Manager:      r.Manager,
		ManagerPhone: r.ManagerPhone,
		Items:        r.Items,
		Notes:        r.Notes,
	}
}

func partnerPage(m *records.Module[partnerEntity.Record], args graphql.ListArgs) *gqlmodels.PartnerPage {
	items := m.Store.Search(term(args.Search))
	page, info := paginate(items, args.CurrentPage, args.PageSize)
	out := &gqlmodels.PartnerPage{Items: make([]*gqlmodels.Partner, 0, len(page)), TotalCount: int32(len(items)), PageInfo: info}
	for _, rec := range page {
		out.Items = append(out.Items, mapPartner(rec))
	}
	return out
}
