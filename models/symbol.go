package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TradingSymbol builds the NSE weekly option symbol, e.g. NIFTY2571723700CE
// (underlying, two-digit year, month without leading zero, two-digit day,
// strike, option type).
func TradingSymbol(underlying string, expiry time.Time, strike int, optionType OptionType) string {
	return fmt.Sprintf("%s%s%d%02d%d%s",
		underlying,
		expiry.Format("06"),
		int(expiry.Month()),
		expiry.Day(),
		strike,
		optionType)
}

// ParseStrike recovers the strike from a weekly option symbol. The date part
// is five digits for single-digit months and six for October to December, so
// both splits are tried; the first one yielding a plausible strike wins.
func ParseStrike(symbol, underlying string) (int, bool) {
	rest := strings.TrimPrefix(symbol, underlying)
	rest = strings.TrimSuffix(rest, string(OptionTypeCE))
	rest = strings.TrimSuffix(rest, string(OptionTypePE))

	for _, dateLen := range []int{5, 6} {
		if len(rest) <= dateLen {
			continue
		}
		strike, err := strconv.Atoi(rest[dateLen:])
		if err != nil || strike < 1000 || strike > 99999 {
			continue
		}
		return strike, true
	}
	return 0, false
}
