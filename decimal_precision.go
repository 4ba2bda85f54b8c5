package l10nEsAeat

import (
	"github.com/hexya-addons/decimalPrecision"
	"github.com/hexya-erp/hexya/src/tools/nbutils"
)

// AEAT amounts are always sent with 2 decimals
func init() {
	decimalPrecision.Precisions["AEAT"] = nbutils.Digits{Precision: 16, Scale: 2}
}
