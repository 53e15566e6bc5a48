package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config       *config.ProjectConfig
	ConfigPath   string
	Exists       bool
	TrackingPath string
	Tracking     bool
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	store   ProjectConfigStore
	tracker DeploymentTracker
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store ProjectConfigStore, tracker DeploymentTracker) *ShowConfig {
	return &ShowConfig{
		store:   store,
		tracker: tracker,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:       cfg,
		ConfigPath:   uc.store.Path(),
		Exists:       uc.store.Exists(),
		TrackingPath: uc.tracker.Path(),
		Tracking:     uc.tracker.Exists(),
	}, nil
}
