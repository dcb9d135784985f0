package inbound

import "testing"

func TestFillSlot(t *testing.T) {
	tests := []struct {
		name string
		in   Record
		want Record
	}{
		{"split", Record{Location: "L3-1-01"}, Record{Location: "L3-1-01", Zone: "L3", Block: "1", Column: "01"}},
		{"join", Record{Zone: "L1", Block: "2", Column: "04"}, Record{Location: "L1-2-04", Zone: "L1", Block: "2", Column: "04"}},
		{"keep explicit parts", Record{Location: "L3-1-01", Zone: "X"}, Record{Location: "L3-1-01", Zone: "X", Block: "1", Column: "01"}},
		{"partial parts", Record{Zone: "L1"}, Record{Zone: "L1"}},
		{"free-form location", Record{Location: "dock"}, Record{Location: "dock"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.FillSlot()
			if got.Location != tt.want.Location || got.Zone != tt.want.Zone || got.Block != tt.want.Block || got.Column != tt.want.Column {
				t.Errorf("FillSlot = %q/%q/%q/%q, want %q/%q/%q/%q",
					got.Location, got.Zone, got.Block, got.Column,
					tt.want.Location, tt.want.Zone, tt.want.Block, tt.want.Column)
			}
		})
	}
}
