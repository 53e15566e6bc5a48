package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
)

// InitTrackingParams contains parameters for creating the tracking database
type InitTrackingParams struct {
	Force bool
}

// InitTrackingResult contains the result of creating the tracking database
type InitTrackingResult struct {
	Path          string
	Created       bool
	AlreadyExists bool
	Reset         bool
}

// InitTracking creates the deployment tracking database
type InitTracking struct {
	config    *config.RuntimeConfig
	tracker   DeploymentTracker
	confirmer Confirmer
}

// NewInitTracking creates a new InitTracking use case
func NewInitTracking(cfg *config.RuntimeConfig, tracker DeploymentTracker, confirmer Confirmer) *InitTracking {
	return &InitTracking{
		config:    cfg,
		tracker:   tracker,
		confirmer: confirmer,
	}
}

// Run creates an empty database. An existing database that already holds
// deployments is only reset with Force or after confirmation.
func (uc *InitTracking) Run(ctx context.Context, params InitTrackingParams) (*InitTrackingResult, error) {
	result := &InitTrackingResult{Path: uc.tracker.Path()}

	if uc.tracker.Exists() {
		result.AlreadyExists = true

		// An unreadable database needs confirmation just like a populated one
		empty, err := uc.tracker.IsEmpty(ctx)
		if err == nil && empty {
			return result, nil
		}

		if !params.Force {
			ok, err := uc.confirmReset(ctx, result.Path)
			if err != nil {
				return nil, err
			}
			if !ok {
				return result, nil
			}
		}
		result.Reset = true
	}

	if err := uc.tracker.Create(ctx); err != nil {
		return nil, err
	}
	result.Created = true
	return result, nil
}

func (uc *InitTracking) confirmReset(ctx context.Context, path string) (bool, error) {
	if uc.config.NonInteractive {
		return false, fmt.Errorf("tracking database %s already contains data, use --force to reset it", path)
	}
	return uc.confirmer.Confirm(ctx, "Tracking database already contains data. Reset it")
}
