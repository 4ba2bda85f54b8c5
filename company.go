package l10nEsAeat

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/pool/h"
	"github.com/hexya-erp/pool/m"
	"github.com/hexya-erp/pool/q"
)

func init() {

	h.Company().AddFields(map[string]models.FieldDefinition{
		"AeatTest": models.BooleanField{
			String: "Use AEAT test environment",
			Help:   "Documents are sent to the AEAT test services instead of the production ones."},
		"AeatSendingEnabled": models.BooleanField{
			String:  "Enable AEAT electronic sending",
			Default: models.DefaultValue(false)},
		"AeatCertificates": models.One2ManyField{
			String:        "AEAT Certificates",
			RelationModel: h.AeatCertificate(),
			ReverseFK:     "Company",
			JSON:          "aeat_certificate_ids"},
	})

	h.Company().Methods().GetAeatCertificate().DeclareMethod(
		`GetAeatCertificate returns the active certificate of this company that is valid today,
		or an empty set if there is none.`,
		func(rs m.CompanySet) m.AeatCertificateSet {
			rs.EnsureOne()
			today := dates.Today()
			startCond := q.AeatCertificate().DateStart().IsNull().
				Or().DateStart().LowerOrEqual(today)
			endCond := q.AeatCertificate().DateEnd().IsNull().
				Or().DateEnd().GreaterOrEqual(today)
			cond := q.AeatCertificate().Company().Equals(rs).
				And().State().Equals("active").
				AndCond(startCond).
				AndCond(endCond)
			return h.AeatCertificate().Search(rs.Env(), cond).OrderBy("DateEnd DESC").Limit(1)
		})

}
