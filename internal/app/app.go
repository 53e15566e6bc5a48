package app

import (
	"log/slog"

	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	InitTracking    *usecase.InitTracking
	TrackDeployment *usecase.TrackDeployment
	ShowDeployment  *usecase.ShowDeployment
	ListDeployments *usecase.ListDeployments
	PlanDeployment  *usecase.PlanDeployment
	CompileProject  *usecase.CompileProject
	ShowConfig      *usecase.ShowConfig
	SetConfig       *usecase.SetConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	initTracking *usecase.InitTracking,
	trackDeployment *usecase.TrackDeployment,
	showDeployment *usecase.ShowDeployment,
	listDeployments *usecase.ListDeployments,
	planDeployment *usecase.PlanDeployment,
	compileProject *usecase.CompileProject,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		InitTracking:    initTracking,
		TrackDeployment: trackDeployment,
		ShowDeployment:  showDeployment,
		ListDeployments: listDeployments,
		PlanDeployment:  planDeployment,
		CompileProject:  compileProject,
		ShowConfig:      showConfig,
		SetConfig:       setConfig,
	}, nil
}
