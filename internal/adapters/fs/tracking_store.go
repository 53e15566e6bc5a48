package fs

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/treb-tracker/internal/adapters/tomldoc"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// TrackingStoreAdapter implements DeploymentTracker on top of .treb/tracking.toml.
//
// Every mutation loads, modifies and rewrites the whole file. Two processes
// tracking into the same project at once can lose updates; callers that
// need that must lock externally.
type TrackingStoreAdapter struct {
	log  *slog.Logger
	path string
}

// NewTrackingStoreAdapter creates a new TrackingStoreAdapter
func NewTrackingStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *TrackingStoreAdapter {
	return &TrackingStoreAdapter{
		log:  log.With("component", "TrackingStore"),
		path: filepath.Join(cfg.DataDir, domain.TrackingFileName),
	}
}

// Path returns the location of the tracking database
func (s *TrackingStoreAdapter) Path() string {
	return s.path
}

// Exists checks if the tracking database file is present
func (s *TrackingStoreAdapter) Exists() bool {
	return fileExists(s.path)
}

// IsEmpty reports whether the database holds no chain buckets. A missing
// database is empty.
func (s *TrackingStoreAdapter) IsEmpty(ctx context.Context) (bool, error) {
	tree, err := s.load(ctx)
	if errors.Is(err, domain.ErrDatabaseNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return len(tree) == 0, nil
}

// Create writes an empty tracking database, truncating any existing one
func (s *TrackingStoreAdapter) Create(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &domain.IOError{Op: "create directory", Path: dir, Err: err}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return &domain.IOError{Op: "create", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.IOError{Op: "close", Path: s.path, Err: err}
	}

	s.log.Debug("created tracking database", "path", s.path)
	return nil
}

// Track records that contract was deployed at address under the chain
// state identified by blockHash. Tracking the same contract again
// overwrites the previous record.
func (s *TrackingStoreAdapter) Track(ctx context.Context, blockHash common.Hash, contract models.ContractIdentity, address common.Address) (bool, error) {
	chainKey := domain.ChainKey(blockHash)
	contractKey := domain.ContractKey(contract.Name, contract.ByteCode, contract.Args)
	path := domain.TrackingPath(chainKey, contractKey)

	tree, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	inserted, err := tree.Upsert(path, recordValue(models.DeploymentRecord{
		Name:    contract.Name,
		Address: address,
	}))
	if err != nil {
		return false, err
	}

	if err := writeDocument(ctx, s.path, tree); err != nil {
		return false, err
	}

	s.log.Debug("tracked deployment",
		"contract", contract.Name,
		"address", address.Hex(),
		"chainKey", chainKey,
		"contractKey", contractKey,
		"inserted", inserted,
	)
	return inserted, nil
}

// GetRecord returns the tracked deployment of contract, or nil if it was
// never tracked under blockHash
func (s *TrackingStoreAdapter) GetRecord(ctx context.Context, blockHash common.Hash, contract models.ContractIdentity) (*models.DeploymentRecord, error) {
	path := domain.TrackingPath(
		domain.ChainKey(blockHash),
		domain.ContractKey(contract.Name, contract.ByteCode, contract.Args),
	)

	tree, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	value, ok := tree.Read(path)
	if !ok {
		return nil, nil
	}

	var record models.DeploymentRecord
	if err := tomldoc.Decode(path, value, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAllForChain returns every deployment tracked under blockHash. A
// missing database is treated like a chain with no deployments.
func (s *TrackingStoreAdapter) GetAllForChain(ctx context.Context, blockHash common.Hash) (models.ChainBucket, error) {
	chainKey := domain.ChainKey(blockHash)

	tree, err := s.load(ctx)
	if errors.Is(err, domain.ErrDatabaseNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	value, ok := tree.Read(chainKey)
	if !ok {
		return nil, nil
	}

	var bucket models.ChainBucket
	if err := tomldoc.Decode(chainKey, value, &bucket); err != nil {
		return nil, err
	}
	return bucket, nil
}

// Load decodes the whole tracking database
func (s *TrackingStoreAdapter) Load(ctx context.Context) (models.TrackingDatabase, error) {
	tree, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	db := models.TrackingDatabase{}
	if err := tomldoc.Decode("", map[string]any(tree), &db); err != nil {
		return nil, err
	}
	return db, nil
}

func (s *TrackingStoreAdapter) load(ctx context.Context) (tomldoc.Tree, error) {
	tree, err := readDocument(ctx, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrDatabaseNotFound
	}
	return tree, err
}

// recordValue converts a record into its document form. Addresses are
// stored as lowercase hex.
func recordValue(record models.DeploymentRecord) map[string]any {
	return map[string]any{
		"name":    record.Name,
		"address": hexutil.Encode(record.Address.Bytes()),
	}
}

// Ensure TrackingStoreAdapter implements DeploymentTracker
var _ usecase.DeploymentTracker = (*TrackingStoreAdapter)(nil)
