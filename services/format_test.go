package services

import "testing"

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "R$ 0,00"},
		{"cents only", 0.5, "R$ 0,50"},
		{"small", 19.5, "R$ 19,50"},
		{"hundreds", 539, "R$ 539,00"},
		{"thousands grouped", 1188, "R$ 1.188,00"},
		{"tens of thousands", 26311.1, "R$ 26.311,10"},
		{"millions", 1234567.89, "R$ 1.234.567,89"},
		{"rounds to two decimals", 2.005, "R$ 2,00"},
		{"negative", -45.9, "-R$ 45,90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBRL(tt.amount)
			if got != tt.expect {
				t.Errorf("FormatBRL(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		name   string
		qty    float64
		unit   string
		expect string
	}{
		{"integer without unit", 28, "", "28"},
		{"integer with unit", 10, "un", "10 un"},
		{"fractional with unit", 39.6, "m", "39.6 m"},
		{"zero", 0, "m", "0 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQty(tt.qty, tt.unit)
			if got != tt.expect {
				t.Errorf("FormatQty(%v, %q) = %q, want %q", tt.qty, tt.unit, got, tt.expect)
			}
		})
	}
}
