package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagewindow/internal/pagination"
)

// NoFocus renders the pager without a focused item.
const NoFocus = -1

// RenderPager renders items as a styled pager bar. The item at index focused
// is underlined; pass NoFocus to skip focus styling.
func RenderPager(items []pagination.Item, focused int) string {
	if len(items) == 0 {
		return ""
	}

	cells := make([]string, 0, len(items))
	for i, item := range items {
		style := PageStyle
		switch {
		case item.Current:
			style = CurrentPageStyle
		case item.Token.IsEllipsis():
			style = EllipsisStyle
		}
		if i == focused {
			style = style.Underline(true)
		}
		cells = append(cells, style.Render(item.Content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// RenderPlainPager renders items as plain text with the current page in
// brackets, e.g. "1 ... 4 5 [6] 7 8 ... 10".
func RenderPlainPager(items []pagination.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.Current {
			parts = append(parts, "["+item.Content+"]")
			continue
		}
		parts = append(parts, item.Content)
	}
	return strings.Join(parts, " ")
}

// RenderLabels renders one "content  label" line per item.
func RenderLabels(items []pagination.Item) string {
	var b strings.Builder
	for _, item := range items {
		marker := " "
		if item.Current {
			marker = "*"
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(padRight(item.Content, labelContentWidth))
		b.WriteString("  ")
		b.WriteString(item.Label)
		b.WriteString("\n")
	}
	return b.String()
}

// labelContentWidth fits page numbers up to five digits.
const labelContentWidth = 5

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
