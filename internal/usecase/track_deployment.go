package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
)

// TrackDeploymentParams contains parameters for tracking a deployment
type TrackDeploymentParams struct {
	BlockHash common.Hash
	Contract  models.ContractIdentity
	Address   common.Address

	// AutoCreate creates the database when it does not exist yet
	AutoCreate bool
}

// TrackDeploymentResult contains the result of tracking a deployment
type TrackDeploymentResult struct {
	Deployment      models.TrackedDeployment
	Inserted        bool
	CreatedDatabase bool
}

// TrackDeployment records a contract deployment in the tracking database
type TrackDeployment struct {
	tracker DeploymentTracker
	sink    ProgressSink
}

// NewTrackDeployment creates a new TrackDeployment use case
func NewTrackDeployment(tracker DeploymentTracker, sink ProgressSink) *TrackDeployment {
	return &TrackDeployment{
		tracker: tracker,
		sink:    sink,
	}
}

// Run executes the track deployment use case
func (uc *TrackDeployment) Run(ctx context.Context, params TrackDeploymentParams) (*TrackDeploymentResult, error) {
	if params.Contract.Name == "" {
		return nil, fmt.Errorf("contract name is required")
	}
	if params.Contract.ByteCode == "" || params.Contract.ByteCode == "0x" {
		return nil, fmt.Errorf("contract bytecode is required")
	}

	result := &TrackDeploymentResult{}

	if params.AutoCreate && !uc.tracker.Exists() {
		uc.sink.Info(fmt.Sprintf("Creating tracking database at %s", uc.tracker.Path()))
		if err := uc.tracker.Create(ctx); err != nil {
			return nil, err
		}
		result.CreatedDatabase = true
	}

	inserted, err := uc.tracker.Track(ctx, params.BlockHash, params.Contract, params.Address)
	if err != nil {
		if errors.Is(err, domain.ErrDatabaseNotFound) {
			return nil, fmt.Errorf("%w: run 'treb-tracker init' first", err)
		}
		return nil, fmt.Errorf("failed to track %s: %w", params.Contract.Name, err)
	}

	result.Inserted = inserted
	result.Deployment = models.TrackedDeployment{
		ChainKey:    domain.ChainKey(params.BlockHash),
		ContractKey: domain.ContractKey(params.Contract.Name, params.Contract.ByteCode, params.Contract.Args),
		Record: models.DeploymentRecord{
			Name:    params.Contract.Name,
			Address: params.Address,
		},
	}
	return result, nil
}
