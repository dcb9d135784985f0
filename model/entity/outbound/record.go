package outbound

import (
	"strings"

	entity "warehouse.GO/model/entity"
)

// Status is the shipment state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusComplete}

var statusLabels = map[Status]string{
	StatusPending:    "예정",
	StatusInProgress: "진행 중",
	StatusComplete:   "완료",
}

// Label is the display text used in tables and exported sheets.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatus accepts the canonical value or the display label, ignoring case and spaces.
func ParseStatus(s string) (Status, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	for st, label := range statusLabels {
		if key == strings.ReplaceAll(string(st), " ", "") || key == strings.ReplaceAll(label, " ", "") {
			return st, true
		}
	}
	switch key {
	case "inprogress", "in_progress", "진행":
		return StatusInProgress, true
	case "done", "completed":
		return StatusComplete, true
	}
	return "", false
}

// Record is one outbound shipment keyed by ID.
type Record struct {
	ID       string      `json:"id" mapstructure:"id"`
	Date     entity.Date `json:"date" mapstructure:"date"`
	Client   string      `json:"client" mapstructure:"client"`
	Vehicle  string      `json:"vehicle" mapstructure:"vehicle"`
	PartCode string      `json:"partCode" mapstructure:"partCode"`
	PartName string      `json:"partName" mapstructure:"partName"`
	Quantity int         `json:"quantity" mapstructure:"quantity"`
	Status   Status      `json:"status" mapstructure:"status"`
	Notes    string      `json:"notes" mapstructure:"notes"`
}
