package l10nEsAeat

import (
	"github.com/hexya-addons/l10nEsAeat/aeattypes"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/pool/h"
	"github.com/hexya-erp/pool/m"
)

func init() {

	h.Partner().AddFields(map[string]models.FieldDefinition{
		"AeatIdentificationType": models.SelectionField{
			String:    "AEAT Identification type",
			Selection: aeattypes.IdentificationTypes,
			Help: `Used to specify an identification type to send to AEAT.
Leave empty to compute it from the VAT and the country of the partner.`},
		"AeatIdentification": models.CharField{
			String: "AEAT Identification",
			Help:   "Used to specify an identification number to send to AEAT instead of the VAT."},
		"AeatSimplifiedInvoice": models.BooleanField{
			String: "Simplified invoices in AEAT?",
			Help:   "Checking this mark, invoices done to this partner will be sent to AEAT as simplified invoices."},
		"AeatAnonymousCashCustomer": models.BooleanField{
			String: "AEAT - Anonymous customer",
			Help:   "Check this for anonymous cash customer. It will be omitted in the cash amount declarations."},
		"AeatSendingEnabled": models.BooleanField{
			String:  "AEAT sending enabled",
			Compute: h.Partner().Methods().ComputeAeatSendingEnabled()},
	})

	h.Partner().Methods().ComputeAeatSendingEnabled().DeclareMethod(
		`ComputeAeatSendingEnabled enables AEAT sending if the company of the partner
		(or of the current user) has it enabled.`,
		func(rs m.PartnerSet) m.PartnerData {
			company := h.Company().Coalesce(rs.Company(), h.User().NewSet(rs.Env()).CurrentUser().Company())
			return h.Partner().NewData().SetAeatSendingEnabled(company.AeatSendingEnabled())
		})

	h.Partner().Methods().MapAeatCountryCode().DeclareMethod(
		`MapAeatCountryCode returns the code AEAT expects for the given country code`,
		func(rs m.PartnerSet, countryCode string, extended bool) string {
			return aeattypes.MapCountryCode(countryCode, extended)
		})

	h.Partner().Methods().GetAeatEuropeCodes().DeclareMethod(
		`GetAeatEuropeCodes returns the codes of the countries of the Europe group`,
		func(rs m.PartnerSet) []string {
			europe := h.CountryGroup().NewSet(rs.Env()).GetRecord("base_europe")
			if europe.IsEmpty() || europe.Countries().IsEmpty() {
				return append([]string(nil), aeattypes.EuropeCodes...)
			}
			var res []string
			for _, country := range europe.Countries().Records() {
				res = append(res, country.Code())
			}
			return res
		})

	h.Partner().Methods().ParseAeatVatInfo().DeclareMethod(
		`ParseAeatVatInfo returns the country code, the identifier type and the VAT number
		of this partner, as they must be sent to AEAT.`,
		func(rs m.PartnerSet) (string, string, string) {
			rs.EnsureOne()
			info := aeattypes.ParseVATInfo(rs.VAT(), rs.Country().Code(), rs.GetAeatEuropeCodes())
			if rs.AeatIdentificationType() != "" {
				info.IdentifierType = rs.AeatIdentificationType()
				if rs.AeatIdentification() != "" {
					info.Number = rs.AeatIdentification()
				}
			}
			return info.Triple()
		})

}
