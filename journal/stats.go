package journal

// Stats summarizes a full trade set.
type Stats struct {
	NetProfit    float64
	WinRate      float64 // percent of trades with positive PnL
	ProfitFactor float64 // gross profit / |gross loss|
	Total        int
	Wins         int
	Losses       int
}

// Summarize recomputes the summary metrics from scratch on every call.
// Zero-PnL trades count as losses, not wins. WinRate is 0 for an empty
// set, and ProfitFactor is 0 when there is no losing PnL to divide by —
// including a flawless record, which therefore reads as 0 rather than
// infinite.
func Summarize(trades []Trade) Stats {
	var st Stats
	var grossWin, grossLoss float64

	for _, t := range trades {
		st.NetProfit += t.PnlUSD
		if t.PnlUSD > 0 {
			st.Wins++
			grossWin += t.PnlUSD
		} else {
			st.Losses++
			grossLoss += t.PnlUSD
		}
	}

	st.Total = len(trades)
	if st.Total > 0 {
		st.WinRate = float64(st.Wins) / float64(st.Total) * 100
	}
	if grossLoss < 0 {
		st.ProfitFactor = grossWin / -grossLoss
	}
	return st
}
