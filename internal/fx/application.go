package fx

import (
	"go.uber.org/fx"

	"groupahpdss/internal/config"
	"groupahpdss/internal/httpapi"
)

// Application creates the main FX application: core providers, the
// single httpapi module, and the server lifecycle hook.
func Application() *fx.App {
	options := []fx.Option{
		CoreModule,
		httpapi.Module,
		AppModule,
	}

	if config.IsProduction() {
		options = append(options, fx.NopLogger)
	}

	return fx.New(options...)
}
