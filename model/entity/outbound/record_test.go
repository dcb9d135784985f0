package outbound

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"완료", StatusComplete, true},
		{"진행 중", StatusInProgress, true},
		{"진행중", StatusInProgress, true},
		{"예정", StatusPending, true},
		{"in-progress", StatusInProgress, true},
		{"In Progress", StatusInProgress, true},
		{"COMPLETE", StatusComplete, true},
		{"shipped?", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStatus(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusInProgress.Label(); got != "진행 중" {
		t.Errorf("Label = %q, want 진행 중", got)
	}
	if got := Status("odd").Label(); got != "odd" {
		t.Errorf("Label unknown = %q, want odd", got)
	}
}
