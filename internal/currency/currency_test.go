package currency

import (
	"math"
	"testing"
)

func TestFormatEnglish(t *testing.T) {
	f := NewFormatter("en-US", "USD")

	tests := []struct {
		amount float64
		want   string
	}{
		{12345, "12,345 USD"},
		{0, "0 USD"},
		{999.5, "1,000 USD"},
		{999.49, "999 USD"},
		{1234567.8, "1,234,568 USD"},
		{math.NaN(), "0 USD"},
		{math.Inf(-1), "0 USD"},
		{-499.5, "-499 USD"},
		{1e19, "10,000,000,000,000,000,000 USD"},
	}

	for _, tt := range tests {
		if got := f.Format(tt.amount); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatLocaleDigits(t *testing.T) {
	tests := []struct {
		name string
		f    *Formatter
		want string
	}{
		{name: "default", f: Default(), want: "۱۲٬۳۴۵ تومان"},
		{name: "regional tag uses base language", f: NewFormatter("fa-IR", ""), want: "۱۲٬۳۴۵"},
		{name: "base tag", f: NewFormatter("fa", ""), want: "۱۲٬۳۴۵"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Format(12345); got != tt.want {
				t.Errorf("Format(12345) = %q, want %q", got, tt.want)
			}
		})
	}

	if got := FormatCurrency(12345); got != "۱۲٬۳۴۵ تومان" {
		t.Errorf("FormatCurrency(12345) = %q", got)
	}
	if got := NewFormatter("fa-IR", "").Locale().String(); got != "fa-IR" {
		t.Errorf("Locale() = %s, want fa-IR", got)
	}
}

func TestFormatFailsSafe(t *testing.T) {
	f := Default()
	if got := f.Format(math.NaN()); got != f.Zero() {
		t.Errorf("Format(NaN) = %q, want %q", got, f.Zero())
	}
}

func TestParse(t *testing.T) {
	f := Default()

	tests := []struct {
		in   string
		want float64
	}{
		{"۱۲٬۳۴۵ تومان", 12345},
		{"١٢,٣٤٥ تومان", 12345},
		{"12,345 تومان", 12345},
		{"۱۲٫۵", 12.5},
		{"  ۵۰۰  ", 500},
		{"", 0},
		{"تومان", 0},
		{"abc", 0},
		{"1.2.3", 0},
	}

	for _, tt := range tests {
		if got := f.Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	formatters := map[string]*Formatter{
		"default": Default(),
		"en":      NewFormatter("en-US", "USD"),
		"ar":      NewFormatter("ar-EG", "جنيه"),
	}

	for name, f := range formatters {
		t.Run(name, func(t *testing.T) {
			for _, amount := range []float64{0, 7, 12345, 1000000, 98765432, -500} {
				if got := f.Parse(f.Format(amount)); got != amount {
					t.Errorf("Parse(Format(%v)) = %v (formatted %q)", amount, got, f.Format(amount))
				}
			}
			if got := f.Parse(f.Format(12345.6)); got != 12346 {
				t.Errorf("fractional amount should round first, got %v", got)
			}
		})
	}
}

func TestPackageHelpers(t *testing.T) {
	if got := ParseCurrency(FormatCurrency(12345)); got != 12345 {
		t.Errorf("ParseCurrency(FormatCurrency(12345)) = %v", got)
	}
}

func TestNewFormatterInvalidLocale(t *testing.T) {
	f := NewFormatter("not a locale!!", "X")
	if f.Locale().String() != DefaultLocale {
		t.Errorf("Locale() = %s, want %s", f.Locale(), DefaultLocale)
	}
}
