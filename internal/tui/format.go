package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagewindow/internal/pagination"
)

//nolint:gochecknoglobals // Printer is safe for reuse and expensive to build per call.
var printer = message.NewPrinter(language.English)

// FormatCount formats n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Summary describes the records shown for info, e.g.
// "Page 3 of 12 · records 21-30 of 1,115".
func Summary(info pagination.PageInfo) string {
	if info.TotalPages == 0 {
		return "No records"
	}
	start, end := pagination.Bounds(info.CurrentPage, info.PageLimit, info.TotalRecords)
	return printer.Sprintf("Page %d of %d · records %d-%d of %d",
		info.CurrentPage, info.TotalPages, start+1, end, info.TotalRecords)
}
