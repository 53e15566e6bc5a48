//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-tracker/internal/adapters"
	"github.com/trebuchet-org/treb-tracker/internal/config"
	"github.com/trebuchet-org/treb-tracker/internal/logging"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewInitTracking,
		usecase.NewTrackDeployment,
		usecase.NewShowDeployment,
		usecase.NewListDeployments,
		usecase.NewPlanDeployment,
		usecase.NewCompileProject,
		usecase.NewShowConfig,
		usecase.NewSetConfig,

		// App
		NewApp,
	)
	return nil, nil
}
