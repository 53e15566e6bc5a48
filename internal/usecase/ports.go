package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
)

// DeploymentTracker persists which contracts were deployed under which chain state
type DeploymentTracker interface {
	Path() string
	Exists() bool
	IsEmpty(ctx context.Context) (bool, error)
	Create(ctx context.Context) error
	Track(ctx context.Context, blockHash common.Hash, contract models.ContractIdentity, address common.Address) (inserted bool, err error)
	GetRecord(ctx context.Context, blockHash common.Hash, contract models.ContractIdentity) (*models.DeploymentRecord, error)
	GetAllForChain(ctx context.Context, blockHash common.Hash) (models.ChainBucket, error)
	Load(ctx context.Context) (models.TrackingDatabase, error)
}

// ProjectConfigStore reads and writes treb.toml
type ProjectConfigStore interface {
	Path() string
	Exists() bool
	Load(ctx context.Context) (*config.ProjectConfig, error)
	Set(ctx context.Context, key string, value any) error
}

// ArtifactRepository lists compiled contract artifacts
type ArtifactRepository interface {
	ListArtifacts(ctx context.Context, dir string) ([]models.ContractIdentity, error)
}

// CompilerResolver picks a compiler strategy for the project
type CompilerResolver interface {
	Resolve(ctx context.Context, compiler string, options []string) (*domain.CompilerStrategy, error)
}

// CompilerRunner executes a resolved compiler strategy
type CompilerRunner interface {
	Run(ctx context.Context, strategy *domain.CompilerStrategy) ([]byte, error)
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
