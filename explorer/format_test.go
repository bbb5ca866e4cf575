package explorer

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{999.99, "999.99"},
		{1000, "1,000.00"},
		{1234567.8, "1,234,567.80"},
		{100000000, "100,000,000.00"},
		{-42500.5, "-42,500.50"},
		{0.005, "0.01"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
