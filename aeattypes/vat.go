package aeattypes

import (
	"strings"

	"github.com/hexya-erp/hexya/src/tools/strutils"
)

// MapCountryCode returns the code under which AEAT expects the given country.
// If extended is true, special territories (Canary Islands, Northern Ireland)
// and the Greek VAT prefix are also mapped.
func MapCountryCode(code string, extended bool) string {
	if res, ok := countryCodeMap[code]; ok {
		return res
	}
	if extended {
		if res, ok := extendedCountryCodeMap[code]; ok {
			return res
		}
	}
	return code
}

// ParseVATInfo splits the given VAT into the country code, the identifier
// type and the VAT number expected by AEAT.
//
// countryCode is the code of the partner's country (may be empty) and
// europeCodes the list of codes that are considered European for AEAT.
// This function never fails: missing data gives empty strings.
func ParseVATInfo(vat, countryCode string, europeCodes []string) VATInfo {
	var res VATInfo
	res.Number = vat
	prefix := vat
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	prefix = MapCountryCode(strings.ToUpper(prefix), false)
	switch {
	case len(prefix) == 2 && strutils.IsIn(prefix, europeCodes...):
		res.CountryCode = prefix
		res.Number = vat[2:]
		res.IdentifierType = IdentifierNIFIVA
	default:
		res.CountryCode = MapCountryCode(countryCode, false)
		res.IdentifierType = IdentifierOfficialDocument
		if res.CountryCode != "" && strutils.IsIn(res.CountryCode, europeCodes...) {
			res.IdentifierType = IdentifierNIFIVA
		}
	}
	if res.CountryCode == "ES" {
		res.IdentifierType = ""
	}
	return res
}
