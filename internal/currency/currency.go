// Package currency converts amounts to and from localized display strings.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultLocale is the locale amounts are rendered in unless configured.
	DefaultLocale = "fa-IR"
	// DefaultUnit is the label appended to every formatted amount.
	DefaultUnit = "تومان"
)

var half = decimal.NewFromFloat(0.5)

// Formatter renders whole currency amounts for one locale.
type Formatter struct {
	tag     language.Tag
	unit    string
	printer *message.Printer
}

// NewFormatter creates a formatter for the given BCP 47 locale and unit label.
// An unparseable locale falls back to DefaultLocale.
func NewFormatter(locale, unit string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{
		tag:     tag,
		unit:    unit,
		printer: message.NewPrinter(numberTag(tag)),
	}
}

// numberTag reduces a regional tag such as fa-IR to its base language.
// x/text only carries number systems and separators for base languages, so
// the printer would otherwise fall back to Latin digits.
func numberTag(tag language.Tag) language.Tag {
	base, conf := tag.Base()
	if conf == language.No {
		return tag
	}
	baseTag, err := language.Parse(base.String())
	if err != nil {
		return tag
	}
	return baseTag
}

var defaultFormatter = NewFormatter(DefaultLocale, DefaultUnit)

// Default returns the Toman formatter.
func Default() *Formatter {
	return defaultFormatter
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Format rounds amount to the nearest whole unit (halves round up) and
// renders it with the locale's digits and group separators followed by the
// unit label. NaN and infinities render as zero.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	rounded := decimal.NewFromFloat(amount).Add(half).Floor().InexactFloat64()
	s := f.printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
	if f.unit == "" {
		return s
	}
	return s + " " + f.unit
}

// Zero returns the canonical zero-amount string.
func (f *Formatter) Zero() string {
	return f.Format(0)
}

// Parse is the inverse of Format. It strips the unit label and group
// separators, maps Persian and Arabic-Indic digits to ASCII and parses the
// rest. Empty or unparseable input yields 0.
func (f *Formatter) Parse(s string) float64 {
	if f.unit != "" {
		s = strings.ReplaceAll(s, f.unit, "")
	}
	cleaned := normalizeDigits(strings.TrimSpace(s))
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// normalizeDigits keeps only an ASCII rendering of the number: digits, the
// decimal point and a leading minus sign.
func normalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '۰' && r <= '۹': // Extended Arabic-Indic (Persian)
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩': // Arabic-Indic
			b.WriteRune('0' + (r - '٠'))
		case r == '.' || r == '٫':
			b.WriteRune('.')
		case r == '-' || r == '−':
			if b.Len() == 0 {
				b.WriteRune('-')
			}
		}
		// Group separators (",", "٬", "،"), spaces and bidi marks are dropped.
	}
	return b.String()
}

// FormatCurrency formats amount with the default formatter.
func FormatCurrency(amount float64) string {
	return defaultFormatter.Format(amount)
}

// ParseCurrency parses s with the default formatter.
func ParseCurrency(s string) float64 {
	return defaultFormatter.Parse(s)
}
