package normalize

import outboundEntity "warehouse.GO/model/entity/outbound"

// InboundSchema covers received-pallet sheets. Column order follows the 입고현황 sheet.
var InboundSchema = Schema{
	Domain: "inbound",
	Fields: []Field{
		{Name: "receivedOn", Header: "입고일", Aliases: []string{"입고일자", "date"}, Kind: Date},
		{Name: "partNo", Header: "PartNo", Aliases: []string{"Part No.", "Part No", "품번"}, Kind: Text},
		{Name: "areaCode", Header: "ALC", Kind: Text},
		{Name: "palletCount", Header: "PLT수", Kind: Int},
		{Name: "item", Header: "품목", Aliases: []string{"품명"}, Kind: Text},
		{Name: "qtyPerPallet", Header: "팔렛당수량", Aliases: []string{"팔렛당 수량", "팔렛트당 수량"}, Kind: Int},
		{Name: "receivedQty", Header: "입고수량", Aliases: []string{"입고 수량"}, Kind: Int},
		{Name: "receivedPallets", Header: "입고팔렛", Aliases: []string{"입고 팔렛"}, Kind: Decimal},
		{Name: "column2", Header: "열2", Kind: Text},
		{Name: "location", Header: "저장위치", Aliases: []string{"저장 위치"}, Kind: Text},
		{Name: "zone", Header: "구역", Kind: Text},
		{Name: "block", Header: "블록", Kind: Text},
		{Name: "column", Header: "열", Kind: Text},
		{Name: "partStock", Header: "품번재고", Aliases: []string{"품번 재고"}, Kind: Int},
		{Name: "stockPallets", Header: "재고팔렛", Aliases: []string{"재고 팔렛"}, Kind: Decimal},
		{Name: "note", Header: "비고", Aliases: []string{"메모"}, Kind: Text},
		{Name: "id", Header: "ID", Kind: Text},
	},
}

// InventorySchema covers stock sheets. Column order follows the 재고현황 sheet.
var InventorySchema = Schema{
	Domain: "inventory",
	Fields: []Field{
		{Name: "code", Header: "품번", Aliases: []string{"품목코드"}, Kind: Text},
		{Name: "tier", Header: "단수", Kind: Text},
		{Name: "position", Header: "출수", Kind: Text},
		{Name: "name", Header: "품목1", Aliases: []string{"품목명", "품명"}, Kind: Text},
		{Name: "width", Header: "가로", Kind: Int},
		{Name: "depth", Header: "세로", Kind: Int},
		{Name: "height", Header: "높이", Kind: Int},
		{Name: "palletCapacity", Header: "수량PLT", Aliases: []string{"수량/PLT"}, Kind: Int},
		{Name: "leadTime", Header: "LT", Kind: Int},
		{Name: "destination", Header: "납품처", Kind: Text},
		{Name: "physical", Header: "재고", Aliases: []string{"실재고", "현재고"}, Kind: Int},
		{Name: "pallets", Header: "PLT", Kind: Decimal},
		{Name: "erp", Header: "ERP", Aliases: []string{"ERP재고"}, Kind: Int},
		{Name: "shippedOut", Header: "출하1", Aliases: []string{"출하"}, Kind: Int},
		{Name: "receivedIn", Header: "입고", Kind: Int},
		{Name: "variance", Header: "오차", Kind: Int},
		{Name: "correction", Header: "차이수량", Aliases: []string{"차이 수량"}, Kind: Int},
	},
}

// OutboundSchema covers shipment sheets; the camelCase aliases match older JSON exports.
var OutboundSchema = Schema{
	Domain: "outbound",
	Fields: []Field{
		{Name: "id", Header: "출고번호", Aliases: []string{"출고 번호", "ID"}, Kind: Text},
		{Name: "date", Header: "출고일", Aliases: []string{"출고일자", "일자"}, Kind: Date},
		{Name: "client", Header: "납품처", Aliases: []string{"거래처", "고객사"}, Kind: Text},
		{Name: "vehicle", Header: "차종", Kind: Text},
		{Name: "partCode", Header: "품번", Aliases: []string{"품목코드", "itemCode"}, Kind: Text},
		{Name: "partName", Header: "품명", Aliases: []string{"품목명", "itemName"}, Kind: Text},
		{Name: "quantity", Header: "수량", Kind: Int},
		{Name: "status", Header: "상태", Kind: Status, Default: outboundEntity.StatusPending},
		{Name: "notes", Header: "비고", Kind: Text},
	},
}

// PartnerSchema is shared by the supplier and client domains.
var PartnerSchema = Schema{
	Domain: "partner",
	Fields: []Field{
		{Name: "code", Header: "코드", Aliases: []string{"업체코드", "거래처코드"}, Kind: Text},
		{Name: "name", Header: "상호", Aliases: []string{"업체명", "회사명"}, Kind: Text},
		{Name: "ceo", Header: "대표자", Kind: Text},
		{Name: "businessNo", Header: "사업자번호", Aliases: []string{"사업자등록번호"}, Kind: Text},
		{Name: "phone", Header: "전화번호", Aliases: []string{"전화", "연락처"}, Kind: Text},
		{Name: "email", Header: "이메일", Aliases: []string{"E-mail"}, Kind: Text},
		{Name: "address", Header: "주소", Kind: Text},
		{Name: "manager", Header: "담당자", Kind: Text},
		{Name: "managerPhone", Header: "담당자연락처", Aliases: []string{"담당자 전화"}, Kind: Text},
		{Name: "items", Header: "취급품목", Kind: Text},
		{Name: "notes", Header: "비고", Kind: Text},
	},
}

// WithDomain returns a copy of s labelled for another domain.
func (s Schema) WithDomain(domain string) Schema {
	s.Domain = domain
	return s
}
