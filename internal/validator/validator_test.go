package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type probe struct {
	Date   string `validate:"iso_date"`
	Amount string `validate:"decimal"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := v.RegisterValidation("iso_date", validateISODate); err != nil {
		t.Fatal(err)
	}
	if err := v.RegisterValidation("decimal", validateDecimal); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestValidators(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name  string
		in    probe
		valid bool
	}{
		{"valid", probe{Date: "2024-12-14", Amount: "20.50"}, true},
		{"negative_amount", probe{Date: "2024-12-14", Amount: "-3"}, true},
		{"leap_day", probe{Date: "2024-02-29", Amount: "1"}, true},
		{"impossible_date", probe{Date: "2023-02-29", Amount: "1"}, false},
		{"wrong_layout", probe{Date: "12/14/2024", Amount: "1"}, false},
		{"text_amount", probe{Date: "2024-12-14", Amount: "ten"}, false},
		{"empty_amount", probe{Date: "2024-12-14", Amount: ""}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.in)
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
