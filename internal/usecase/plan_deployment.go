package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
)

// PlanDeploymentParams contains parameters for planning a deployment
type PlanDeploymentParams struct {
	BlockHash common.Hash
	// ArtifactsDir overrides sources.artifacts from treb.toml
	ArtifactsDir string
}

// PlannedContract is one compiled contract and its tracked deployment, if any
type PlannedContract struct {
	Contract    models.ContractIdentity
	ContractKey string
	Deployed    *models.DeploymentRecord
}

// NeedsDeployment reports whether the contract has no tracked deployment
func (p PlannedContract) NeedsDeployment() bool {
	return p.Deployed == nil
}

// PlanDeploymentResult contains the deployment plan
type PlanDeploymentResult struct {
	ChainKey     string
	ArtifactsDir string
	Contracts    []PlannedContract
}

// PendingCount returns how many contracts still need deploying
func (r *PlanDeploymentResult) PendingCount() int {
	n := 0
	for _, c := range r.Contracts {
		if c.NeedsDeployment() {
			n++
		}
	}
	return n
}

// PlanDeployment decides which compiled contracts can reuse a tracked deployment
type PlanDeployment struct {
	config    *config.RuntimeConfig
	tracker   DeploymentTracker
	artifacts ArtifactRepository
}

// NewPlanDeployment creates a new PlanDeployment use case
func NewPlanDeployment(cfg *config.RuntimeConfig, tracker DeploymentTracker, artifacts ArtifactRepository) *PlanDeployment {
	return &PlanDeployment{
		config:    cfg,
		tracker:   tracker,
		artifacts: artifacts,
	}
}

// Run executes the plan deployment use case. Without a tracking database
// every contract needs deployment.
func (uc *PlanDeployment) Run(ctx context.Context, params PlanDeploymentParams) (*PlanDeploymentResult, error) {
	project := uc.config.Project
	if project == nil {
		project = config.DefaultProjectConfig()
	}

	dir := params.ArtifactsDir
	if dir == "" {
		dir = project.Sources.Artifacts
	}

	contracts, err := uc.artifacts.ListArtifacts(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifacts: %w", err)
	}

	bucket, err := uc.tracker.GetAllForChain(ctx, params.BlockHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployments: %w", err)
	}

	result := &PlanDeploymentResult{
		ChainKey:     domain.ChainKey(params.BlockHash),
		ArtifactsDir: dir,
	}
	for _, contract := range contracts {
		contract.Args = project.Deployment.Args[contract.Name]
		key := domain.ContractKey(contract.Name, contract.ByteCode, contract.Args)

		planned := PlannedContract{Contract: contract, ContractKey: key}
		if record, ok := bucket[key]; ok {
			planned.Deployed = &record
		}
		result.Contracts = append(result.Contracts, planned)
	}
	return result, nil
}
