// Copyright 2024 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package l10nEsAeat

import (
	"crypto/tls"

	"github.com/hexya-addons/decimalPrecision"
	"github.com/hexya-addons/l10nEsAeat/aeatclient"
	"github.com/hexya-addons/l10nEsAeat/aeattypes"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/pool/h"
	"github.com/hexya-erp/pool/m"
)

func init() {

	h.AeatMixin().DeclareMixinModel()
	h.AeatMixin().AddFields(map[string]models.FieldDefinition{
		"AeatState": models.SelectionField{
			String:    "AEAT Send State",
			Selection: aeattypes.AeatStates,
			Default:   models.DefaultValue("not_sent"),
			ReadOnly:  true,
			NoCopy:    true,
			Help:      "Indicates the state of this document in relation with the presentation to the AEAT."},
		"AeatSendFailed": models.BooleanField{
			String:   "AEAT Send Failed",
			ReadOnly: true,
			NoCopy:   true,
			Help: `Indicates that the last attempt to communicate this document to the AEAT has failed.
See the last error for details.`},
		"AeatSendError": models.CharField{
			String:   "AEAT Send Error",
			ReadOnly: true,
			NoCopy:   true},
		"AeatHeaderSent": models.TextField{
			String:   "AEAT last header sent",
			ReadOnly: true,
			NoCopy:   true},
		"AeatContentSent": models.TextField{
			String:   "AEAT last content sent",
			ReadOnly: true,
			NoCopy:   true},
	})

	h.AeatMixin().Methods().ChangeDateFormat().DeclareMethod(
		`ChangeDateFormat converts the given YYYY-MM-DD date into the DD-MM-YYYY format used by AEAT`,
		func(rs m.AeatMixinSet, date string) string {
			res, err := aeattypes.ChangeDateFormat(date)
			if err != nil {
				log.Panic("Unable to format date for AEAT", "date", date, "error", err)
			}
			return res
		})

	h.AeatMixin().Methods().GetDocumentDate().DeclareMethod(
		`GetDocumentDate returns the date of the document. Must be overridden.`,
		func(rs m.AeatMixinSet) dates.Date {
			panic(rs.T("Not implemented"))
		})

	h.AeatMixin().Methods().GetDocumentFiscalDate().DeclareMethod(
		`GetDocumentFiscalDate returns the date from which the fiscal year and period
		of the document are taken. Must be overridden.`,
		func(rs m.AeatMixinSet) dates.Date {
			panic(rs.T("Not implemented"))
		})

	h.AeatMixin().Methods().GetDocumentFiscalYear().DeclareMethod(
		`GetDocumentFiscalYear returns the year of the fiscal date of the document`,
		func(rs m.AeatMixinSet) int {
			return aeattypes.FiscalYear(rs.GetDocumentFiscalDate())
		})

	h.AeatMixin().Methods().GetDocumentPeriod().DeclareMethod(
		`GetDocumentPeriod returns the month of the fiscal date as a two digits string`,
		func(rs m.AeatMixinSet) string {
			return aeattypes.FiscalPeriod(rs.GetDocumentFiscalDate())
		})

	h.AeatMixin().Methods().AeatGetPartner().DeclareMethod(
		`AeatGetPartner returns the partner to declare for this document. Must be overridden.`,
		func(rs m.AeatMixinSet) m.PartnerSet {
			panic(rs.T("Not implemented"))
		})

	h.AeatMixin().Methods().GetAeatCompany().DeclareMethod(
		`GetAeatCompany returns the company issuing this document. Must be overridden.`,
		func(rs m.AeatMixinSet) m.CompanySet {
			panic(rs.T("Not implemented"))
		})

	h.AeatMixin().Methods().GetAeatCountryCode().DeclareMethod(
		`GetAeatCountryCode returns the country code of the partner as understood by AEAT`,
		func(rs m.AeatMixinSet) string {
			countryCode, _, _ := rs.AeatGetPartner().ParseAeatVatInfo()
			return countryCode
		})

	h.AeatMixin().Methods().IsAeatSimplifiedInvoice().DeclareMethod(
		`IsAeatSimplifiedInvoice returns true if this document must be sent as a simplified invoice`,
		func(rs m.AeatMixinSet) bool {
			return false
		})

	h.AeatMixin().Methods().AeatCheckExceptions().DeclareMethod(
		`AeatCheckExceptions panics if this document cannot be sent to the AEAT.
		Extend it to add checks.`,
		func(rs m.AeatMixinSet) {
			rs.EnsureOne()
			partner := rs.AeatGetPartner()
			countryCode := rs.GetAeatCountryCode()
			if countryCode == "ES" && partner.VAT() == "" && !rs.IsAeatSimplifiedInvoice() {
				panic(rs.T("The partner has not a VAT configured."))
			}
			if rs.GetAeatCompany().ChartTemplate().IsEmpty() {
				panic(rs.T("You have to select what account chart template use this company."))
			}
		})

	h.AeatMixin().Methods().ConnectParamsAeat().DeclareMethod(
		`ConnectParamsAeat returns the connection parameters of the service registered
		under mappingKey, for the environment of the document's company.`,
		func(rs m.AeatMixinSet, mappingKey string) aeatclient.Params {
			endpoint, err := aeatclient.GetEndpoint(mappingKey)
			if err != nil {
				panic(rs.T("No AEAT service is configured for %s.", mappingKey))
			}
			return endpoint.Params(rs.GetAeatCompany().AeatTest())
		})

	h.AeatMixin().Methods().BindService().DeclareMethod(
		`BindService returns the SOAP service at the given params, authenticated with cert`,
		func(rs m.AeatMixinSet, params aeatclient.Params, cert tls.Certificate) *aeatclient.Service {
			service, err := aeatclient.Bind(params,
				aeatclient.WithCertificate(cert),
				aeatclient.WithLogger(transportLogger{}))
			if err != nil {
				panic(rs.T("Unable to connect to the AEAT: %s", err))
			}
			return service
		})

	h.AeatMixin().Methods().ConnectAeat().DeclareMethod(
		`ConnectAeat returns the AEAT service registered under mappingKey, bound with
		the certificate of the document's company.`,
		func(rs m.AeatMixinSet, mappingKey string) *aeatclient.Service {
			rs.EnsureOne()
			cert := h.AeatCertificate().NewSet(rs.Env()).GetCertificates(rs.GetAeatCompany())
			params := rs.ConnectParamsAeat(mappingKey)
			log.Debug("Connecting to AEAT", "mappingKey", mappingKey, "port", params.PortName, "address", params.Address)
			return rs.BindService(params, cert)
		})

	h.AeatMixin().Methods().AeatRound().DeclareMethod(
		`AeatRound rounds in place the values of data under the given keys with the AEAT precision`,
		func(rs m.AeatMixinSet, data interface{}, keys []string) {
			aeattypes.RoundByKeys(data, keys, int(decimalPrecision.Precisions["AEAT"].Scale))
		})

}

// transportLogger adapts the module logger to the leveled logger interface
// of the AEAT HTTP transport
type transportLogger struct{}

func (transportLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Error(msg, keysAndValues...)
}

func (transportLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Info(msg, keysAndValues...)
}

func (transportLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Debug(msg, keysAndValues...)
}

func (transportLogger) Warn(msg string, keysAndValues ...interface{}) {
	log.Warn(msg, keysAndValues...)
}
