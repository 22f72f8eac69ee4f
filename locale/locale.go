// Package locale supplies the per-language separators, month/day names,
// and AM/PM markers consumed by the root package's date and number
// formatters.
package locale

import "github.com/sheetfmt/sheetfmt"

// Locale holds the display strings a single language/region needs for
// number and date formatting, plus metadata (Code) the formatter itself
// doesn't need.
type Locale struct {
	Code string
	sheetfmt.LocaleTable
}

// Default returns the en-US locale used whenever a caller doesn't supply
// one explicitly.
func Default() *Locale {
	return &Locale{
		Code: "en-US",
		LocaleTable: sheetfmt.LocaleTable{
			DecimalSeparator:   ".",
			ThousandsSeparator: ",",
			CurrencySymbol:     "$",
			MonthShort: [12]string{
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			},
			MonthFull: [12]string{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
			DayShort: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			DayFull: [7]string{
				"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
			},
			AmPmUpper: [2]string{"AM", "PM"},
			AmPmLower: [2]string{"am", "pm"},
		},
	}
}

// Table returns the embedded sheetfmt.LocaleTable, the shape
// sheetfmt.Options.Locale expects.
func (l *Locale) Table() *sheetfmt.LocaleTable {
	return &l.LocaleTable
}
