package cli

import "testing"

func TestFormatIndianCurrencyExamples(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹0.00"},
		{"hundreds", 320, "₹320.00"},
		{"thousands", 48200, "₹48,200.00"},
		{"lakh", 125000, "₹1,25,000.00"},
		{"ten lakh", 2500000, "₹25,00,000.00"},
		{"crore", 10000000, "₹1,00,00,000.00"},
		{"negative", -48200.5, "-₹48,200.50"},
		{"paise", 99.99, "₹99.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatIndianCurrency(tt.amount); got != tt.want {
				t.Errorf("FormatIndianCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatPnLSign(t *testing.T) {
	if got := FormatPnL(125); got != "+₹125.00" {
		t.Errorf("FormatPnL(125) = %q", got)
	}
	if got := FormatPnL(-125); got != "-₹125.00" {
		t.Errorf("FormatPnL(-125) = %q", got)
	}
	if got := FormatPnL(0); got != "₹0.00" {
		t.Errorf("FormatPnL(0) = %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{48200, "48200.00"},
		{10, "10.00"},
		{-10, "-10.00"},
		{5.5, "5.5000"},
		{0.1234, "0.1234"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestFormatBreakevens(t *testing.T) {
	tests := []struct {
		name       string
		breakevens []float64
		max        int
		want       string
	}{
		{"empty", nil, 4, "None"},
		{"single", []float64{103}, 4, "103.00"},
		{"pair", []float64{97.5, 112.25}, 4, "97.50, 112.25"},
		{"truncated", []float64{1, 2, 3, 4, 5, 6}, 4, "1.00, 2.00, 3.00, 4.00, …"},
		{"no limit", []float64{1, 2, 3, 4, 5}, 0, "1.00, 2.00, 3.00, 4.00, 5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBreakevens(tt.breakevens, tt.max); got != tt.want {
				t.Errorf("FormatBreakevens(%v, %d) = %q, want %q", tt.breakevens, tt.max, got, tt.want)
			}
		})
	}
}
