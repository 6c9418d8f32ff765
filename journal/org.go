package journal

import (
	"fmt"
	"strings"
)

// FormatTradeOrg renders a trade as an Org-mode block suitable for pasting
// into a text journal. Structured facts go in a PROPERTIES drawer for easy
// search; the stored note becomes the Review section.
func FormatTradeOrg(t Trade) string {
	var b strings.Builder

	fmt.Fprintf(&b, "** Trade %d: %s (%s)\n", t.ID, t.Pair, t.Direction)
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %d\n", t.ID)
	fmt.Fprintf(&b, ":PAIR: %s\n", t.Pair)
	fmt.Fprintf(&b, ":DIRECTION: %s\n", t.Direction)
	fmt.Fprintf(&b, ":LOTS: %g\n", t.Lots)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %g\n", t.EntryPrice)
	fmt.Fprintf(&b, ":EXIT_PRICE: %g\n", t.ExitPrice)
	fmt.Fprintf(&b, ":PNL_USD: %.2f\n", t.PnlUSD)
	fmt.Fprintf(&b, ":ENTRY_TIME: %s\n", t.EntryTime)
	b.WriteString(":END:\n")
	b.WriteString("\n*** Review\n")
	if t.Note == "" {
		b.WriteString("- \n")
	} else {
		fmt.Fprintf(&b, "%s\n", t.Note)
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}
