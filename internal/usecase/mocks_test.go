package usecase_test

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// MockDeploymentTracker is a mock implementation of DeploymentTracker
type MockDeploymentTracker struct {
	mock.Mock
}

func (m *MockDeploymentTracker) Path() string {
	return m.Called().String(0)
}

func (m *MockDeploymentTracker) Exists() bool {
	return m.Called().Bool(0)
}

func (m *MockDeploymentTracker) IsEmpty(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeploymentTracker) Create(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDeploymentTracker) Track(ctx context.Context, blockHash common.Hash, contract models.ContractIdentity, address common.Address) (bool, error) {
	args := m.Called(ctx, blockHash, contract, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeploymentTracker) GetRecord(ctx context.Context, blockHash common.Hash, contract models.ContractIdentity) (*models.DeploymentRecord, error) {
	args := m.Called(ctx, blockHash, contract)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeploymentRecord), args.Error(1)
}

func (m *MockDeploymentTracker) GetAllForChain(ctx context.Context, blockHash common.Hash) (models.ChainBucket, error) {
	args := m.Called(ctx, blockHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.ChainBucket), args.Error(1)
}

func (m *MockDeploymentTracker) Load(ctx context.Context) (models.TrackingDatabase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.TrackingDatabase), args.Error(1)
}

// MockProjectConfigStore is a mock implementation of ProjectConfigStore
type MockProjectConfigStore struct {
	mock.Mock
}

func (m *MockProjectConfigStore) Path() string {
	return m.Called().String(0)
}

func (m *MockProjectConfigStore) Exists() bool {
	return m.Called().Bool(0)
}

func (m *MockProjectConfigStore) Load(ctx context.Context) (*config.ProjectConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.ProjectConfig), args.Error(1)
}

func (m *MockProjectConfigStore) Set(ctx context.Context, key string, value any) error {
	return m.Called(ctx, key, value).Error(0)
}

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) ListArtifacts(ctx context.Context, dir string) ([]models.ContractIdentity, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContractIdentity), args.Error(1)
}

// MockCompilerResolver is a mock implementation of CompilerResolver
type MockCompilerResolver struct {
	mock.Mock
}

func (m *MockCompilerResolver) Resolve(ctx context.Context, compiler string, options []string) (*domain.CompilerStrategy, error) {
	args := m.Called(ctx, compiler, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompilerStrategy), args.Error(1)
}

// MockCompilerRunner is a mock implementation of CompilerRunner
type MockCompilerRunner struct {
	mock.Mock
}

func (m *MockCompilerRunner) Run(ctx context.Context, strategy *domain.CompilerStrategy) ([]byte, error) {
	args := m.Called(ctx, strategy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {}
