// Copyright 2024 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package l10nEsAeat

import (
	_ "github.com/hexya-addons/account"
	_ "github.com/hexya-addons/base"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"
	"github.com/hexya-erp/pool/h"
)

const MODULE_NAME string = "l10n_es_aeat"

var log logging.Logger

func init() {
	server.RegisterModule(&server.Module{
		Name: MODULE_NAME,
		PostInit: func() {
			models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
				h.AeatCertificate().NewSet(env).ExpireCertificates()
			})
		},
	})

	log = logging.GetLogger("l10n_es_aeat")
}
