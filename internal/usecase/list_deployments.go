package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	BlockHash common.Hash
	// All lists every chain bucket instead of the one for BlockHash
	All bool
}

// ListDeploymentsResult contains the result of listing deployments
type ListDeploymentsResult struct {
	ChainKey       string // empty when All is set
	DatabaseExists bool
	Deployments    []models.TrackedDeployment
}

// ListDeployments is the use case for listing tracked deployments
type ListDeployments struct {
	tracker DeploymentTracker
	sink    ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(tracker DeploymentTracker, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		tracker: tracker,
		sink:    sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*ListDeploymentsResult, error) {
	result := &ListDeploymentsResult{DatabaseExists: uc.tracker.Exists()}

	if params.All {
		if !result.DatabaseExists {
			return result, nil
		}
		db, err := uc.tracker.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load tracking database: %w", err)
		}

		chainKeys := lo.Keys(db)
		sort.Strings(chainKeys)
		for _, chainKey := range chainKeys {
			result.Deployments = append(result.Deployments, db[chainKey].Entries(chainKey)...)
		}
		return result, nil
	}

	result.ChainKey = domain.ChainKey(params.BlockHash)
	bucket, err := uc.tracker.GetAllForChain(ctx, params.BlockHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployments: %w", err)
	}
	result.Deployments = bucket.Entries(result.ChainKey)
	return result, nil
}
