package html

import (
	"strconv"

	inboundEntity "warehouse.GO/model/entity/inbound"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	outboundEntity "warehouse.GO/model/entity/outbound"
	partnerEntity "warehouse.GO/model/entity/partner"
	"warehouse.GO/service/variance"
)

var (
	InboundHeaders   = []string{"입고일", "PartNo", "ALC", "PLT수", "품목", "팔렛당수량", "입고수량", "입고팔렛", "열2", "저장위치", "품번재고", "재고팔렛", "비고"}
	InventoryHeaders = []string{"품번", "단수", "출수", "품목1", "가로", "세로", "높이", "수량PLT", "LT", "납품처", "재고", "PLT", "ERP", "출하1", "입고", "오차", "차이수량"}
	OutboundHeaders  = []string{"출고번호", "출고일", "납품처", "차종", "품번", "품명", "수량", "상태", "비고"}
	PartnerHeaders   = []string{"코드", "상호", "대표자", "사업자번호", "전화번호", "이메일", "담당자", "담당자연락처", "취급품목"}
)

func InboundRow(r inboundEntity.Record) Row {
	return Row{
		Key: r.ID,
		Cells: []string{
			r.ReceivedOn.String(), r.PartNo, r.AreaCode, Number(r.PalletCount), r.Item,
			Number(r.QtyPerPallet), Number(r.ReceivedQty), Decimal(r.ReceivedPallets), r.Column2,
			r.Location, Number(r.PartStock), Decimal(r.StockPallets), r.Note,
		},
	}
}

// InventoryRow flags understocked or mismatched lines.
func InventoryRow(r inventoryEntity.Record) Row {
	return Row{
		Key: r.Code,
		Cells: []string{
			r.Code, r.Tier, r.Position, r.Name,
			strconv.Itoa(r.Width), strconv.Itoa(r.Depth), strconv.Itoa(r.Height),
			Number(r.PalletCapacity), strconv.Itoa(r.LeadTime), r.Destination,
			Number(r.Physical), Decimal(r.Pallets), Number(r.ERP),
			Number(r.ShippedOut), Number(r.ReceivedIn), Number(r.Variance), Number(r.Correction),
		},
		Flagged: variance.Flagged(r),
	}
}

func OutboundRow(r outboundEntity.Record) Row {
	return Row{
		Key: r.ID,
		Cells: []string{
			r.ID, r.Date.String(), r.Client, r.Vehicle, r.PartCode, r.PartName,
			Number(r.Quantity), r.Status.Label(), r.Notes,
		},
	}
}

func PartnerRow(r partnerEntity.Record) Row {
	return Row{
		Key: r.Code,
		Cells: []string{
			r.Code, r.Name, r.CEO, r.BusinessNo, r.Phone, r.Email, r.Manager, r.ManagerPhone, r.Items,
		},
	}
}
