package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := NewDate(2024, time.January, 24)
	cases := []string{"2024-01-24", "2024/01/24", "2024.01.24", "2024. 1. 24.", "20240124", "01-24-24", "1/24/2024", " 2024-01-24 "}
	for _, in := range cases {
		got, err := ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseDate_EmptyAndInvalid(t *testing.T) {
	d, err := ParseDate("")
	if err != nil || !d.IsZero() {
		t.Errorf("ParseDate(\"\") = %v, %v; want zero, nil", d, err)
	}
	if _, err := ParseDate("next tuesday"); err == nil {
		t.Error("ParseDate(invalid): want error")
	}
}

func TestDate_JSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.June, 1))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-06-01"` {
		t.Errorf("Marshal = %s, want \"2024-06-01\"", b)
	}
	var d Date
	if err := json.Unmarshal([]byte(`""`), &d); err != nil || !d.IsZero() {
		t.Errorf("Unmarshal empty = %v, %v; want zero", d, err)
	}
	if err := json.Unmarshal([]byte(`"2024.06.01"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("String = %q, want 2024-06-01", d.String())
	}
}
