package l10nEsAeat

import (
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/pool/h"
	"github.com/hexya-erp/pool/m"
)

func init() {

	h.AccountInvoice().InheritModel(h.AeatMixin())

	h.AccountInvoice().Methods().AeatGetPartner().Extend("",
		func(rs m.AccountInvoiceSet) m.PartnerSet {
			return rs.CommercialPartner()
		})

	h.AccountInvoice().Methods().GetAeatCompany().Extend("",
		func(rs m.AccountInvoiceSet) m.CompanySet {
			return rs.Company()
		})

	h.AccountInvoice().Methods().GetDocumentDate().Extend("",
		func(rs m.AccountInvoiceSet) dates.Date {
			return rs.DateInvoice()
		})

	h.AccountInvoice().Methods().GetDocumentFiscalDate().Extend("",
		func(rs m.AccountInvoiceSet) dates.Date {
			if !rs.Date().IsZero() {
				return rs.Date()
			}
			return rs.DateInvoice()
		})

	h.AccountInvoice().Methods().IsAeatSimplifiedInvoice().Extend("",
		func(rs m.AccountInvoiceSet) bool {
			return rs.CommercialPartner().AeatSimplifiedInvoice()
		})

}
