// Package modules lists the feature modules mounted by the web service.
package modules

import (
	module "github.com/louisbranch/tablekit/internal/services/web/module"
	"github.com/louisbranch/tablekit/internal/services/web/modules/chat"
	"github.com/louisbranch/tablekit/internal/services/web/modules/public"
	"github.com/louisbranch/tablekit/internal/services/web/modules/schedule"
	"github.com/louisbranch/tablekit/internal/services/web/platform/requestmeta"
)

// Module is the contract every registered feature implements.
type Module = module.Module

// DefaultModules returns the modules of the web and activity surfaces.
func DefaultModules(policy requestmeta.SchemePolicy) []Module {
	return []Module{
		public.New(),
		schedule.New().WithSchemePolicy(policy),
		schedule.NewActivity().WithSchemePolicy(policy),
		chat.New(),
	}
}
