package l10nEsAeat

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/hexya/src/tests"
	"github.com/hexya-erp/pool/h"
	"github.com/hexya-erp/pool/m"
	"github.com/hexya-erp/pool/q"
	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

func TestMain(m *testing.M) {

	tests.RunTests(m, "l10n_es_aeat", func() {
		err := models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			chart := h.AccountChartTemplate().NewSet(env).GetRecord("l10n_generic_coa_configurable_chart_template")
			chart.TryLoadingForCurrentCompany()
		})
		if err != nil {
			panic(err)
		}
	})
}

type TestAeatBaseStruct struct {
	MainCompany m.CompanySet
	Partner     m.PartnerSet
	Invoice     m.AccountInvoiceSet
}

func initTestAeatBaseStruct(env models.Environment) TestAeatBaseStruct {
	var out TestAeatBaseStruct
	out.MainCompany = h.Company().NewSet(env).GetRecord("base_main_company")
	out.Partner = h.Partner().Create(env, h.Partner().NewData().
		SetName("Test Partner").
		SetVAT("ES12345678Z").
		SetCountry(h.Country().NewSet(env).GetRecord("base_es")).
		SetAeatSimplifiedInvoice(false))
	journal := h.AccountJournal().Search(env, q.AccountJournal().Type().Equals("sale")).Limit(1)
	account := h.AccountAccount().Search(env, q.AccountAccount().InternalType().Equals("receivable")).Limit(1)
	out.Invoice = h.AccountInvoice().Create(env, h.AccountInvoice().NewData().
		SetName("Test AEAT Invoice").
		SetJournal(journal).
		SetAccount(account).
		SetPartner(out.Partner).
		SetCompany(out.MainCompany).
		SetDateInvoice(dates.ParseDate("2024-12-10")).
		SetDate(dates.ParseDate("2024-12-13")))
	return out
}

// panicMessage returns the value given to panic by f, or an empty string
func panicMessage(f func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	f()
	return
}

// selfSigned returns a new key and a certificate for it valid between the given times
func selfSigned(notBefore, notAfter time.Time) (*ecdsa.PrivateKey, *x509.Certificate) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		panic(err)
	}
	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "TEST COMPANY - B12345678"},
		NotBefore:    notBefore,
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		panic(err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		panic(err)
	}
	return key, cert
}

// selfSignedPEM returns a certificate and its key, valid from yesterday to tomorrow
func selfSignedPEM() (string, string) {
	key, cert := selfSigned(time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 1))
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		panic(err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})),
		string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}))
}

// selfSignedPKCS12 returns a base64 encoded PKCS#12 file valid from 2024-01-15 to 2099-06-30
func selfSignedPKCS12(password string) string {
	key, cert := selfSigned(
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2099, time.June, 30, 0, 0, 0, 0, time.UTC))
	data, err := gopkcs12.Legacy.Encode(key, cert, nil, password)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(data)
}

func createTestCertificate(env models.Environment, company m.CompanySet) m.AeatCertificateSet {
	certPEM, keyPEM := selfSignedPEM()
	cert := h.AeatCertificate().Create(env, h.AeatCertificate().NewData().
		SetName("Test certificate").
		SetCompany(company).
		SetPublicKey(certPEM).
		SetPrivateKey(keyPEM).
		SetDateStart(dates.Today().AddDate(0, 0, -1)).
		SetDateEnd(dates.Today().AddDate(0, 0, 1)))
	cert.ActionActive()
	return cert
}
