package aeattypes

import (
	"github.com/hexya-erp/hexya/src/tools/strutils"
	"github.com/shopspring/decimal"
)

// RoundByKeys rounds in place to prec decimals all the values of elem found
// under one of the given keys, at any nesting level.
//
// elem can be a map[string]interface{}, a []interface{} or a
// []map[string]interface{}. Values that are not floats are left untouched,
// as are values under other keys, which are walked recursively instead.
//
// Rounding is done on the decimal representation of the value (half away
// from zero), so that 3 x 3.77 with 10% tax gives the amount AEAT expects.
func RoundByKeys(elem interface{}, keys []string, prec int) {
	switch e := elem.(type) {
	case map[string]interface{}:
		for key, value := range e {
			if !strutils.IsIn(key, keys...) {
				RoundByKeys(value, keys, prec)
				continue
			}
			e[key] = roundValue(value, prec)
		}
	case []map[string]interface{}:
		for _, value := range e {
			RoundByKeys(value, keys, prec)
		}
	case []interface{}:
		for _, value := range e {
			RoundByKeys(value, keys, prec)
		}
	}
}

func roundValue(value interface{}, prec int) interface{} {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v).Round(int32(prec)).InexactFloat64()
	case float32:
		return float32(decimal.NewFromFloat32(v).Round(int32(prec)).InexactFloat64())
	default:
		return value
	}
}
