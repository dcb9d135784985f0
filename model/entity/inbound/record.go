package inbound

import (
	"strings"

	"github.com/shopspring/decimal"

	entity "warehouse.GO/model/entity"
)

// Record is one received pallet line. Part numbers repeat across records, so
// identity is the synthetic ID assigned by the store.
type Record struct {
	ID              string          `json:"id" mapstructure:"id"`
	ReceivedOn      entity.Date     `json:"receivedOn" mapstructure:"receivedOn"`
	PartNo          string          `json:"partNo" mapstructure:"partNo"`
	AreaCode        string          `json:"areaCode" mapstructure:"areaCode"`
	PalletCount     int             `json:"palletCount" mapstructure:"palletCount"`
	Item            string          `json:"item" mapstructure:"item"`
	QtyPerPallet    int             `json:"qtyPerPallet" mapstructure:"qtyPerPallet"`
	ReceivedQty     int             `json:"receivedQty" mapstructure:"receivedQty"`
	ReceivedPallets decimal.Decimal `json:"receivedPallets" mapstructure:"receivedPallets"`
	Column2         string          `json:"column2" mapstructure:"column2"`
	Location        string          `json:"location" mapstructure:"location"`
	Zone            string          `json:"zone" mapstructure:"zone"`
	Block           string          `json:"block" mapstructure:"block"`
	Column          string          `json:"column" mapstructure:"column"`
	PartStock       int             `json:"partStock" mapstructure:"partStock"`
	StockPallets    decimal.Decimal `json:"stockPallets" mapstructure:"stockPallets"`
	Note            string          `json:"note" mapstructure:"note"`
}

// FillSlot keeps Location and its zone/block/column parts consistent:
// a missing location is joined from the parts, missing parts are split from the location.
func (r *Record) FillSlot() {
	if r.Location == "" {
		if r.Zone != "" && r.Block != "" && r.Column != "" {
			r.Location = r.Zone + "-" + r.Block + "-" + r.Column
		}
		return
	}
	parts := strings.SplitN(r.Location, "-", 3)
	if len(parts) != 3 {
		return
	}
	if r.Zone == "" {
		r.Zone = parts[0]
	}
	if r.Block == "" {
		r.Block = parts[1]
	}
	if r.Column == "" {
		r.Column = parts[2]
	}
}
