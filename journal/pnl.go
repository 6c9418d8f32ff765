package journal

import "strings"

// ComputePnL converts a closed position into a dollar figure: BUY profits
// when price rises, SELL when it falls. No rounding is applied here — the
// stored value keeps full precision and display layers truncate to 2
// decimals for presentation only.
func ComputePnL(dir Direction, lots, entry, exit, contract float64) float64 {
	if dir == Sell {
		return (entry - exit) * lots * contract
	}
	return (exit - entry) * lots * contract
}

// ContractFor picks the contract multiplier for a symbol. Matching is by
// substring on the uppercased symbol, gold checked before crypto, so a
// symbol containing both resolves to gold. Anything unrecognized is
// treated as forex. This is not an instrument registry; a symbol that
// happens to contain "BTC" will be classified as crypto.
func ContractFor(pair string, s Settings) float64 {
	p := strings.ToUpper(pair)

	if strings.Contains(p, "XAU") || strings.Contains(p, "GOLD") {
		return s.Gold
	}
	for _, k := range []string{"BTC", "ETH", "SOL"} {
		if strings.Contains(p, k) {
			return s.Crypto
		}
	}
	return s.Forex
}
