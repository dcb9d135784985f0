package models

// --- Records ---

type Inbound struct {
	ID              string  `json:"id"`
	ReceivedOn      string  `json:"receivedOn"`
	PartNo          string  `json:"partNo"`
	AreaCode        string  `json:"areaCode"`
	PalletCount     int32   `json:"palletCount"`
	Item            string  `json:"item"`
	QtyPerPallet    int32   `json:"qtyPerPallet"`
	ReceivedQty     int32   `json:"receivedQty"`
	ReceivedPallets float64 `json:"receivedPallets"`
	Location        string  `json:"location"`
	Zone            string  `json:"zone"`
	Block           string  `json:"block"`
	Column          string  `json:"column"`
	PartStock       int32   `json:"partStock"`
	StockPallets    float64 `json:"stockPallets"`
	Note            string  `json:"note"`
}

type Inventory struct {
	Code        string  `json:"code"`
	Tier        string  `json:"tier"`
	Position    string  `json:"position"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	Physical    int32   `json:"physical"`
	Pallets     float64 `json:"pallets"`
	ERP         int32   `json:"erp"`
	ShippedOut  int32   `json:"shippedOut"`
	ReceivedIn  int32   `json:"receivedIn"`
	Variance    int32   `json:"variance"`
	Correction  int32   `json:"correction"`
	Flagged     bool    `json:"flagged"`
}

type Outbound struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Client      string `json:"client"`
	Vehicle     string `json:"vehicle"`
	PartCode    string `json:"partCode"`
	PartName    string `json:"partName"`
	Quantity    int32  `json:"quantity"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	Notes       string `json:"notes"`
}

// Partner is a supplier or a client.
type Partner struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CEO          string `json:"ceo"`
	BusinessNo   string `json:"businessNo"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Manager      string `json:"manager"`
	ManagerPhone string `json:"managerPhone"`
	Items        string `json:"items"`
	Notes        string `json:"notes"`
}

// --- Pages ---

type PageInfo struct {
	PageSize    int32 `json:"pageSize"`
	CurrentPage int32 `json:"currentPage"`
	TotalPages  int32 `json:"totalPages"`
}

type InboundPage struct {
	Items      []*Inbound `json:"items"`
	TotalCount int32      `json:"totalCount"`
	PageInfo   *PageInfo  `json:"pageInfo"`
}

type InventoryPage struct {
	Items      []*Inventory `json:"items"`
	TotalCount int32        `json:"totalCount"`
	PageInfo   *PageInfo    `json:"pageInfo"`
}

type OutboundPage struct {
	Items      []*Outbound `json:"items"`
	TotalCount int32       `json:"totalCount"`
	PageInfo   *PageInfo   `json:"pageInfo"`
}

type PartnerPage struct {
	Items      []*Partner `json:"items"`
	TotalCount int32      `json:"totalCount"`
	PageInfo   *PageInfo  `json:"pageInfo"`
}

// --- Dashboard ---

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int32  `json:"count"`
}

type DestinationStock struct {
	Destination string `json:"destination"`
	Physical    int32  `json:"physical"`
}

type Activity struct {
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Dashboard struct {
	TotalItems         int32               `json:"totalItems"`
	Understock         int32               `json:"understock"`
	Discrepancies      int32               `json:"discrepancies"`
	OutOfStock         int32               `json:"outOfStock"`
	TotalPhysical      int32               `json:"totalPhysical"`
	InboundCount       int32               `json:"inboundCount"`
	OutboundCount      int32               `json:"outboundCount"`
	InboundToday       int32               `json:"inboundToday"`
	OutboundToday      int32               `json:"outboundToday"`
	Suppliers          int32               `json:"suppliers"`
	Clients            int32               `json:"clients"`
	OutboundByStatus   []*StatusCount      `json:"outboundByStatus"`
	StockByDestination []*DestinationStock `json:"stockByDestination"`
	LowestStock        []*Inventory        `json:"lowestStock"`
	Recent             []*Activity         `json:"recent"`
	GeneratedAt        string              `json:"generatedAt"`
}
