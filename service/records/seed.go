package records

import (
	"github.com/shopspring/decimal"

	inboundEntity "warehouse.GO/model/entity/inbound"
	inventoryEntity "warehouse.GO/model/entity/inventory"
	outboundEntity "warehouse.GO/model/entity/outbound"
	partnerEntity "warehouse.GO/model/entity/partner"
)

// Sample data shown until the first save of each domain.

func inboundSeed() []inboundEntity.Record {
	inflator := func(partNo string, palletCount, qty int, column2, location string, stock int, stockPallets string) inboundEntity.Record {
		return inboundEntity.Record{
			ReceivedOn:      date("2024-01-24"),
			PartNo:          partNo,
			AreaCode:        "0",
			PalletCount:     palletCount,
			Item:            "INFLATOR",
			QtyPerPallet:    qty,
			ReceivedQty:     qty,
			ReceivedPallets: decimal.RequireFromString("1.00"),
			Column2:         column2,
			Location:        location,
			PartStock:       stock,
			StockPallets:    decimal.RequireFromString(stockPallets),
		}
	}
	return []inboundEntity.Record{
		inflator("DB850-34010", 7, 864, "14", "L3-1-01", 5184, "6.00"),
		inflator("DB850-34010", 7, 864, "14", "L3-1-02", 5184, "6.00"),
		inflator("G3845-93000", 20, 720, "5", "L1-2-04", 2160, "3.00"),
	}
}

func inventorySeed() []inventoryEntity.Record {
	item := func(code, tier, position, name string, w, d, h, capacity, lt int, dest string, physical int, pallets string, erp, shipped int) inventoryEntity.Record {
		return inventoryEntity.Record{
			Code: code, Tier: tier, Position: position, Name: name,
			Width: w, Depth: d, Height: h,
			PalletCapacity: capacity, LeadTime: lt, Destination: dest,
			Physical: physical, Pallets: decimal.RequireFromString(pallets),
			ERP: erp, ShippedOut: shipped,
		}
	}
	return []inventoryEntity.Record{
		item("P001", "1", "2", "엔진 컨트롤 유닛", 30, 20, 10, 100, 3, "현대자동차 울산공장", 120, "1.2", 120, 20),
		item("P002", "2", "3", "변속기 어셈블리", 40, 30, 15, 50, 5, "현대자동차 울산공장", 45, "0.9", 45, 15),
		item("P003", "3", "4", "브레이크 패드", 20, 15, 5, 200, 2, "현대자동차 아산공장", 200, "1.0", 200, 50),
		item("P004", "2", "2", "에어백 모듈", 25, 25, 10, 80, 4, "현대자동차 울산공장", 80, "1.0", 80, 25),
		item("P005", "1", "1", "라디에이터", 50, 40, 20, 40, 6, "현대자동차 아산공장", 35, "0.875", 40, 10),
		item("P006", "2", "2", "헤드라이트 어셈블리", 35, 25, 15, 60, 3, "현대자동차 울산공장", 60, "1.0", 60, 30),
		item("P007", "3", "3", "배터리", 30, 20, 25, 50, 4, "현대자동차 울산공장", 90, "1.8", 90, 0),
	}
}

func outboundSeed() []outboundEntity.Record {
	return []outboundEntity.Record{
		{ID: "OUT001", Date: date("2024-06-01"), Client: "현대자동차 울산공장", Vehicle: "아반떼", PartCode: "P001", PartName: "엔진 컨트롤 유닛", Quantity: 20, Status: outboundEntity.StatusComplete},
		{ID: "OUT002", Date: date("2024-06-02"), Client: "현대자동차 울산공장", Vehicle: "쏘나타", PartCode: "P002", PartName: "변속기 어셈블리", Quantity: 15, Status: outboundEntity.StatusInProgress},
		{ID: "OUT003", Date: date("2024-06-03"), Client: "현대자동차 아산공장", Vehicle: "그랜저", PartCode: "P003", PartName: "브레이크 패드", Quantity: 50, Status: outboundEntity.StatusPending},
		{ID: "OUT004", Date: date("2024-06-03"), Client: "현대자동차 울산공장", Vehicle: "아반떼", PartCode: "P004", PartName: "에어백 모듈", Quantity: 25, Status: outboundEntity.StatusPending},
		{ID: "OUT005", Date: date("2024-06-04"), Client: "현대자동차 아산공장", Vehicle: "쏘나타", PartCode: "P005", PartName: "라디에이터", Quantity: 10, Status: outboundEntity.StatusPending},
		{ID: "OUT006", Date: date("2024-06-04"), Client: "현대자동차 울산공장", Vehicle: "그랜저", PartCode: "P006", PartName: "헤드라이트 어셈블리", Quantity: 30, Status: outboundEntity.StatusPending},
	}
}

func supplierSeed() []partnerEntity.Record {
	return []partnerEntity.Record{
		{
			Code: "SUP001", Name: "한국철강", CEO: "김철강", BusinessNo: "123-45-67890",
			Phone: "02-1234-5678", Email: "contact@koreansteel.com", Address: "서울시 강남구 테헤란로 123",
			Manager: "이담당", ManagerPhone: "010-1234-5678", Items: "철강, 스테인리스", Notes: "주요 공급업체",
		},
		{
			Code: "SUP002", Name: "대한알루미늄", CEO: "박알루", BusinessNo: "234-56-78901",
			Phone: "02-2345-6789", Email: "contact@daehanal.com", Address: "서울시 서초구 양재동 231",
			Manager: "김관리", ManagerPhone: "010-2345-6789", Items: "알루미늄, 합금",
		},
	}
}

func clientSeed() []partnerEntity.Record {
	return []partnerEntity.Record{
		{
			Code: "CLI001", Name: "현대자동차", CEO: "정의선", BusinessNo: "123-45-67890",
			Phone: "02-1234-5678", Email: "contact@hyundai.com", Address: "서울시 서초구 헌릉로 12",
			Manager: "김담당", ManagerPhone: "010-1234-5678", Items: "엔진 마운트, 브레이크 패드", Notes: "주요 납품처",
		},
		{
			Code: "CLI002", Name: "기아자동차", CEO: "송호성", BusinessNo: "234-56-78901",
			Phone: "02-2345-6789", Email: "contact@kia.com", Address: "서울시 서초구 양재동 231",
			Manager: "이관리", ManagerPhone: "010-2345-6789", Items: "트랜스미션 케이스",
		},
	}
}
