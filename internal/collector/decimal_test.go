package collector

import (
	"errors"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"41.23", 41.23},
		{`"41.23"`, 41.23},
		{" 41.23 ", 41.23},
		{"41,23", 41.23},
		{"1,234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"1.234.567,89", 1234567.89},
		{"64,885,408", 64885408},
		{"1 234.56", 1234.56},
		{"64885408", 64885408},
	}
	for _, tt := range tests {
		got, err := ParseDecimal("RSI", tt.raw)
		if err != nil {
			t.Errorf("ParseDecimal(%q): unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDecimal(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseDecimal_Malformed(t *testing.T) {
	for _, raw := range []string{"", "n/a", "--", "12.3.4"} {
		_, err := ParseDecimal("RSI", raw)
		if err == nil {
			t.Errorf("ParseDecimal(%q): expected error", raw)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseDecimal(%q): expected ParseError, got %T", raw, err)
		}
	}
}
