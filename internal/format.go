package internal

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts and derived figures for terminal display using
// locale-aware grouping. The locale follows the language of the source
// documents (config), defaulting to Japanese.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a formatter for the given BCP 47 locale string.
// Unparseable locales fall back to Japanese.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Japanese
	}
	return Formatter{printer: message.NewPrinter(tag)}
}

// Amount formats a table cell with grouping separators.
func (f Formatter) Amount(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Delta formats an absolute year-over-year change, with an explicit sign
// for increases.
func (f Formatter) Delta(v float64) string {
	s := f.Amount(v)
	if v > 0 {
		return "+" + s
	}
	return s
}

// Percent formats a year-over-year percentage. Non-finite values (division
// by a zero prior year) render as the "-" placeholder.
func (f Formatter) Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(1))) + "%"
}
