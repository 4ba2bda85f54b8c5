// Copyright 2024 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package aeattypes

import (
	"github.com/hexya-erp/hexya/src/models/types"
)

// A VATInfo is the split representation of a partner VAT as expected by AEAT
// services.
type VATInfo struct {
	CountryCode    string
	IdentifierType string
	Number         string
}

// Triple returns the country code, the identifier type and the VAT number
func (vi VATInfo) Triple() (string, string, string) {
	return vi.CountryCode, vi.IdentifierType, vi.Number
}

// Identifier types of the AEAT "IDOtro" block
const (
	IdentifierNIFIVA           = "02"
	IdentifierPassport         = "03"
	IdentifierOfficialDocument = "04"
	IdentifierResidence        = "05"
	IdentifierOther            = "06"
	IdentifierNotRegistered    = "07"
)

// IdentificationTypes is the selection of identifier types a partner can force
var IdentificationTypes = types.Selection{
	IdentifierNIFIVA:           "NIF-IVA",
	IdentifierPassport:         "Passport",
	IdentifierOfficialDocument: "Official identification document issued by the country or territory of residence",
	IdentifierResidence:        "Residence certificate",
	IdentifierOther:            "Other supporting document",
	IdentifierNotRegistered:    "Not registered",
}

// AeatStates is the selection of sending states of an AEAT document
var AeatStates = types.Selection{
	"not_sent":      "Not sent",
	"sent":          "Sent",
	"sent_w_errors": "Accepted with errors",
	"incorrect":     "Rejected",
	"cancelled":     "Cancelled",
}

// EuropeCodes are the country codes of the European Union members.
// It is used when the europe country group cannot be found.
var EuropeCodes = []string{
	"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FR", "GR", "HR", "HU",
	"IE", "IT", "LT", "LU", "LV", "MT", "NL", "PL", "PT", "RO", "SE", "SI", "SK",
}

// territories that AEAT reports under their parent country code
var countryCodeMap = map[string]string{
	"RE": "FR",
	"GP": "FR",
	"MQ": "FR",
	"GF": "FR",
}

// codes that are only remapped when the extended mapping is asked
var extendedCountryCodeMap = map[string]string{
	"IC": "ES",
	"XI": "GB",
	"EL": "GR",
}
