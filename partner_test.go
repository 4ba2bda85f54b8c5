// Copyright 2024 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package l10nEsAeat

import (
	"testing"

	"github.com/hexya-addons/l10nEsAeat/aeattypes"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/pool/h"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAeatSendingEnabled(t *testing.T) {
	Convey("Checking AEAT sending enabled flag", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			company := h.Company().Create(env, h.Company().NewData().
				SetName("Test Company"))
			partner := h.Partner().Create(env, h.Partner().NewData().
				SetName("Test Mixin Record").
				SetCompany(company))
			Convey("Disabled by default", func() {
				So(partner.AeatSendingEnabled(), ShouldBeFalse)
			})
			Convey("Enabled with the company", func() {
				company.SetAeatSendingEnabled(true)
				So(partner.AeatSendingEnabled(), ShouldBeTrue)
			})
		}), ShouldBeNil)
	})
}

func TestParseAeatVatInfo(t *testing.T) {
	Convey("Checking partner VAT parsing", t, FailureContinues, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			partner := h.Partner().Create(env, h.Partner().NewData().
				SetName("Test Partner").
				SetVAT("ES12345678Z").
				SetCountry(h.Country().NewSet(env).GetRecord("base_es")))
			Convey("Spanish partner", func() {
				countryCode, identifierType, vatNumber := partner.ParseAeatVatInfo()
				So(countryCode, ShouldEqual, "ES")
				So(identifierType, ShouldEqual, "")
				So(vatNumber, ShouldEqual, "12345678Z")
			})
			Convey("American partner", func() {
				partner.Write(h.Partner().NewData().
					SetVAT("US12345678Z").
					SetCountry(h.Country().NewSet(env).GetRecord("base_us")))
				countryCode, identifierType, vatNumber := partner.ParseAeatVatInfo()
				So(countryCode, ShouldEqual, "US")
				So(identifierType, ShouldEqual, "04")
				So(vatNumber, ShouldEqual, "US12345678Z")
			})
			Convey("German partner without VAT", func() {
				partner.Write(h.Partner().NewData().
					SetVAT("").
					SetCountry(h.Country().NewSet(env).GetRecord("base_de")))
				countryCode, identifierType, vatNumber := partner.ParseAeatVatInfo()
				So(countryCode, ShouldEqual, "DE")
				So(identifierType, ShouldEqual, "02")
				So(vatNumber, ShouldEqual, "")
			})
			Convey("Partner without country nor VAT", func() {
				partner.Write(h.Partner().NewData().
					SetVAT("").
					SetCountry(h.Country().NewSet(env)))
				countryCode, identifierType, vatNumber := partner.ParseAeatVatInfo()
				So(countryCode, ShouldEqual, "")
				So(identifierType, ShouldEqual, "04")
				So(vatNumber, ShouldEqual, "")
			})
			Convey("Forced identification", func() {
				partner.Write(h.Partner().NewData().
					SetVAT("US12345678Z").
					SetCountry(h.Country().NewSet(env).GetRecord("base_us")).
					SetAeatIdentificationType("03").
					SetAeatIdentification("X1234567"))
				countryCode, identifierType, vatNumber := partner.ParseAeatVatInfo()
				So(countryCode, ShouldEqual, "US")
				So(identifierType, ShouldEqual, "03")
				So(vatNumber, ShouldEqual, "X1234567")
			})
			Convey("Europe codes", func() {
				codes := partner.GetAeatEuropeCodes()
				So(codes, ShouldContain, "DE")
				So(codes, ShouldContain, "ES")
				So(codes, ShouldNotContain, "US")
				So(partner.MapAeatCountryCode("IC", true), ShouldEqual, "ES")
			})
			Convey("Europe codes can be modified by callers", func() {
				codes := partner.GetAeatEuropeCodes()
				codes[0] = "US"
				So(partner.GetAeatEuropeCodes(), ShouldNotContain, "US")
				So(aeattypes.EuropeCodes, ShouldNotContain, "US")
			})
		}), ShouldBeNil)
	})
}
