package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// Module provides the solve module's Service and Handler, and registers
// its routes once the router exists.
var Module = fx.Module("httpapi",
	fx.Provide(NewService, NewHandler),
	fx.Invoke(func(router *gin.Engine, h *Handler) {
		h.RegisterRoutes(router)
	}),
)
