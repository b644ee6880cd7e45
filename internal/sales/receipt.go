package sales

import (
	"fmt"
	"strings"
)

const (
	receiptWidth  = 48
	receiptBanner = "The Greenacre Farm Shop"
	columnGap     = 4
)

// formatCents renders an amount of cents as a two-decimal currency string,
// e.g. 135 -> "$1.35".
func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// activeReceipt is the placeholder returned for transactions that have not
// been finalised yet, whatever their cart currently holds.
func activeReceipt() string {
	return "Transaction is still active; no receipt can be printed until it is finalised."
}

// renderReceipt lays out a finalised transaction as a fixed-width receipt.
// Each entry is one row under the headings; cells beyond the heading count
// (discount annotations) are printed on their own line below the row.
// A non-empty savings string adds a total-savings line above the sign-off.
func renderReceipt(headings []string, entries [][]string, total, customerName, savings string) string {
	widths := columnWidths(headings, entries)

	var b strings.Builder
	rule := strings.Repeat("=", receiptWidth)
	thinRule := strings.Repeat("-", receiptWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center(receiptBanner) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(row(headings, widths) + "\n")
	for _, entry := range entries {
		b.WriteString(row(entry[:min(len(entry), len(headings))], widths) + "\n")
		for _, extra := range entry[min(len(entry), len(headings)):] {
			b.WriteString(extra + "\n")
		}
	}
	b.WriteString(thinRule + "\n")
	b.WriteString("Total: " + total + "\n")
	if savings != "" {
		b.WriteString("***** TOTAL SAVINGS: " + savings + " *****\n")
	}
	b.WriteString(thinRule + "\n")
	b.WriteString("Thank you for shopping with us, " + customerName + "!\n")
	b.WriteString(rule + "\n")
	return b.String()
}

func columnWidths(headings []string, entries [][]string) []int {
	widths := make([]int, len(headings))
	for i, h := range headings {
		widths[i] = len(h)
	}
	for _, entry := range entries {
		for i := 0; i < len(entry) && i < len(widths); i++ {
			if len(entry[i]) > widths[i] {
				widths[i] = len(entry[i])
			}
		}
	}
	return widths
}

func row(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}
	return strings.TrimRight(strings.Join(padded, strings.Repeat(" ", columnGap)), " ")
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	return strings.Repeat(" ", (receiptWidth-len(s))/2) + s
}
