package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
)

// ShowDeploymentParams identifies the deployment to look up
type ShowDeploymentParams struct {
	BlockHash common.Hash
	Contract  models.ContractIdentity
}

// ShowDeploymentResult contains the looked up deployment, if any
type ShowDeploymentResult struct {
	ChainKey    string
	ContractKey string
	Contract    models.ContractIdentity
	Record      *models.DeploymentRecord
}

// Found reports whether the contract is tracked
func (r *ShowDeploymentResult) Found() bool {
	return r.Record != nil
}

// ShowDeployment looks up a single tracked deployment
type ShowDeployment struct {
	tracker DeploymentTracker
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(tracker DeploymentTracker) *ShowDeployment {
	return &ShowDeployment{tracker: tracker}
}

// Run executes the show deployment use case. A missing database is an
// error here, unlike in ListDeployments.
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*ShowDeploymentResult, error) {
	record, err := uc.tracker.GetRecord(ctx, params.BlockHash, params.Contract)
	if err != nil {
		return nil, err
	}

	return &ShowDeploymentResult{
		ChainKey:    domain.ChainKey(params.BlockHash),
		ContractKey: domain.ContractKey(params.Contract.Name, params.Contract.ByteCode, params.Contract.Args),
		Contract:    params.Contract,
		Record:      record,
	}, nil
}
