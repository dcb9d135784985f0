package inventory

import "github.com/shopspring/decimal"

// Record is one stock line keyed by part code. Variance and Correction are
// derived from Physical and ERP and are recomputed on every write.
type Record struct {
	Code           string          `json:"code" mapstructure:"code"`
	Tier           string          `json:"tier" mapstructure:"tier"`
	Position       string          `json:"position" mapstructure:"position"`
	Name           string          `json:"name" mapstructure:"name"`
	Width          int             `json:"width" mapstructure:"width"`
	Depth          int             `json:"depth" mapstructure:"depth"`
	Height         int             `json:"height" mapstructure:"height"`
	PalletCapacity int             `json:"palletCapacity" mapstructure:"palletCapacity"`
	LeadTime       int             `json:"leadTime" mapstructure:"leadTime"`
	Destination    string          `json:"destination" mapstructure:"destination"`
	Physical       int             `json:"physical" mapstructure:"physical"`
	Pallets        decimal.Decimal `json:"pallets" mapstructure:"pallets"`
	ERP            int             `json:"erp" mapstructure:"erp"`
	ShippedOut     int             `json:"shippedOut" mapstructure:"shippedOut"`
	ReceivedIn     int             `json:"receivedIn" mapstructure:"receivedIn"`
	Variance       int             `json:"variance" mapstructure:"variance"`
	Correction     int             `json:"correction" mapstructure:"correction"`
}
