package partner

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	ok := Record{Code: "CLI001", Name: "현대자동차", Phone: "02-1234-5678", Email: "contact@hyundai.com", ManagerPhone: "010-1234-5678"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate valid: %v", err)
	}
	tests := []struct {
		name string
		mod  func(*Record)
	}{
		{"no code", func(r *Record) { r.Code = "" }},
		{"no name", func(r *Record) { r.Name = "" }},
		{"bad email", func(r *Record) { r.Email = "not-an-email" }},
		{"bad phone", func(r *Record) { r.Phone = "0212345678" }},
		{"bad manager phone", func(r *Record) { r.ManagerPhone = "010-12-5678" }},
	}
	for _, tt := range tests {
		r := ok
		tt.mod(&r)
		if err := r.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Validate = %v, want ErrInvalid", tt.name, err)
		}
	}
}
