// Copyright 2024 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package l10nEsAeat

import (
	"crypto/tls"
	"encoding/base64"

	"github.com/hexya-addons/l10nEsAeat/aeatclient"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/types"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/pool/h"
	"github.com/hexya-erp/pool/m"
	"github.com/hexya-erp/pool/q"
)

func init() {

	h.AeatCertificate().DeclareModel()
	h.AeatCertificate().SetDefaultOrder("DateEnd DESC", "ID DESC")

	h.AeatCertificate().AddFields(map[string]models.FieldDefinition{
		"Name": models.CharField{
			Required: true},
		"Company": models.Many2OneField{
			RelationModel: h.Company(),
			Required:      true,
			OnDelete:      models.Cascade,
			Default: func(env models.Environment) interface{} {
				return h.User().NewSet(env).CurrentUser().Company()
			}},
		"File": models.BinaryField{
			String: "PKCS#12 File",
			Help:   "Certificate file as delivered by the certification authority (.p12 or .pfx)"},
		"FileName": models.CharField{},
		"State": models.SelectionField{
			Selection: types.Selection{
				"draft":   "Draft",
				"active":  "Active",
				"expired": "Expired"},
			Default:  models.DefaultValue("draft"),
			ReadOnly: true,
			NoCopy:   true},
		"DateStart": models.DateField{
			String:   "Start Date",
			ReadOnly: true},
		"DateEnd": models.DateField{
			String:   "End Date",
			ReadOnly: true},
		"PublicKey": models.TextField{
			String:   "Public Key",
			ReadOnly: true,
			NoCopy:   true},
		"PrivateKey": models.TextField{
			String:   "Private Key",
			ReadOnly: true,
			NoCopy:   true},
	})

	h.AeatCertificate().Methods().LoadPassword().DeclareMethod(
		`LoadPassword extracts the keys and the validity dates of the certificate file
		with the given password and activates the certificate.`,
		func(rs m.AeatCertificateSet, password string) {
			rs.EnsureOne()
			if rs.File() == "" {
				panic(rs.T("No certificate file has been uploaded."))
			}
			data, err := base64.StdEncoding.DecodeString(rs.File())
			if err != nil {
				panic(rs.T("The certificate file is corrupted: %s", err))
			}
			cert, err := aeatclient.LoadPKCS12(data, password)
			if err != nil {
				log.Warn("Unable to load AEAT certificate", "certificate", rs.ID(), "error", err)
				panic(rs.T("Unable to load the certificate, check the password: %s", err))
			}
			rs.Write(h.AeatCertificate().NewData().
				SetPublicKey(string(cert.CertPEM)).
				SetPrivateKey(string(cert.KeyPEM)).
				SetDateStart(dates.ParseDate(cert.NotBefore.Format("2006-01-02"))).
				SetDateEnd(dates.ParseDate(cert.NotAfter.Format("2006-01-02"))))
			rs.ActionActive()
			log.Info("AEAT certificate loaded", "certificate", rs.ID(), "subject", cert.Subject)
		})

	h.AeatCertificate().Methods().ActionActive().DeclareMethod(
		`ActionActive activates this certificate`,
		func(rs m.AeatCertificateSet) bool {
			for _, cert := range rs.Records() {
				if cert.PublicKey() == "" || cert.PrivateKey() == "" {
					panic(rs.T("The certificate %s has no keys. Load the certificate password first.", cert.Name()))
				}
			}
			return rs.Write(h.AeatCertificate().NewData().SetState("active"))
		})

	h.AeatCertificate().Methods().ActionDraft().DeclareMethod(
		`ActionDraft sets back this certificate to draft`,
		func(rs m.AeatCertificateSet) bool {
			return rs.Write(h.AeatCertificate().NewData().SetState("draft"))
		})

	h.AeatCertificate().Methods().ExpireCertificates().DeclareMethod(
		`ExpireCertificates sets to expired all active certificates whose end date is over.`,
		func(rs m.AeatCertificateSet) {
			expired := h.AeatCertificate().Search(rs.Env(),
				q.AeatCertificate().State().Equals("active").
					And().DateEnd().Lower(dates.Today()))
			if expired.IsEmpty() {
				return
			}
			expired.Write(h.AeatCertificate().NewData().SetState("expired"))
		})

	h.AeatCertificate().Methods().GetCertificates().DeclareMethod(
		`GetCertificates returns the TLS client certificate to use for the given company.
		It panics if the company has no valid certificate.`,
		func(rs m.AeatCertificateSet, company m.CompanySet) tls.Certificate {
			if company.IsEmpty() {
				company = h.User().NewSet(rs.Env()).CurrentUser().Company()
			}
			certificate := company.GetAeatCertificate()
			if certificate.IsEmpty() {
				panic(rs.T("No valid certificate found for this company."))
			}
			keyPair, err := aeatclient.KeyPair([]byte(certificate.PublicKey()), []byte(certificate.PrivateKey()))
			if err != nil {
				panic(rs.T("The certificate of company %s is invalid: %s", company.Name(), err))
			}
			return keyPair
		})

}
