package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

var (
	block   = common.HexToHash("0x01")
	token   = models.ContractIdentity{Name: "Token", ByteCode: "0x6001"}
	addrOne = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

func TestTrackDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("tracks into an existing database", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("Exists").Return(true)
		tracker.On("Track", mock.Anything, block, token, addrOne).Return(true, nil)

		uc := usecase.NewTrackDeployment(tracker, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.TrackDeploymentParams{
			BlockHash:  block,
			Contract:   token,
			Address:    addrOne,
			AutoCreate: true,
		})
		require.NoError(t, err)

		assert.True(t, result.Inserted)
		assert.False(t, result.CreatedDatabase)
		assert.Equal(t, domain.ChainKey(block), result.Deployment.ChainKey)
		assert.Equal(t, domain.ContractKey("Token", "0x6001", nil), result.Deployment.ContractKey)
		assert.Equal(t, models.DeploymentRecord{Name: "Token", Address: addrOne}, result.Deployment.Record)
		tracker.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("auto creates a missing database", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("Exists").Return(false)
		tracker.On("Path").Return("/project/.treb/tracking.toml")
		tracker.On("Create", mock.Anything).Return(nil)
		tracker.On("Track", mock.Anything, block, token, addrOne).Return(true, nil)

		sink := &MockProgressSink{}
		uc := usecase.NewTrackDeployment(tracker, sink)
		result, err := uc.Run(ctx, usecase.TrackDeploymentParams{
			BlockHash:  block,
			Contract:   token,
			Address:    addrOne,
			AutoCreate: true,
		})
		require.NoError(t, err)
		assert.True(t, result.CreatedDatabase)
		assert.Len(t, sink.infos, 1)
		tracker.AssertExpectations(t)
	})

	t.Run("missing database without auto create", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("Track", mock.Anything, block, token, addrOne).Return(false, domain.ErrDatabaseNotFound)

		uc := usecase.NewTrackDeployment(tracker, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.TrackDeploymentParams{
			BlockHash: block,
			Contract:  token,
			Address:   addrOne,
		})
		assert.ErrorIs(t, err, domain.ErrDatabaseNotFound)
		assert.Contains(t, err.Error(), "init")
	})

	t.Run("store errors propagate", func(t *testing.T) {
		storeErr := &domain.InsertionError{Path: "a.b", Reason: "existing value is not a table"}
		tracker := new(MockDeploymentTracker)
		tracker.On("Track", mock.Anything, block, token, addrOne).Return(false, storeErr)

		uc := usecase.NewTrackDeployment(tracker, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.TrackDeploymentParams{BlockHash: block, Contract: token, Address: addrOne})

		var insertErr *domain.InsertionError
		require.ErrorAs(t, err, &insertErr)
		assert.Equal(t, "a.b", insertErr.Path)
	})

	t.Run("requires name and bytecode", func(t *testing.T) {
		uc := usecase.NewTrackDeployment(new(MockDeploymentTracker), &MockProgressSink{})

		_, err := uc.Run(ctx, usecase.TrackDeploymentParams{Contract: models.ContractIdentity{ByteCode: "0x60"}})
		assert.Error(t, err)

		_, err = uc.Run(ctx, usecase.TrackDeploymentParams{Contract: models.ContractIdentity{Name: "Token"}})
		assert.Error(t, err)

		_, err = uc.Run(ctx, usecase.TrackDeploymentParams{Contract: models.ContractIdentity{Name: "Token", ByteCode: "0x"}})
		assert.Error(t, err)
	})
}

func TestShowDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("GetRecord", mock.Anything, block, token).
			Return(&models.DeploymentRecord{Name: "Token", Address: addrOne}, nil)

		result, err := usecase.NewShowDeployment(tracker).Run(ctx, usecase.ShowDeploymentParams{BlockHash: block, Contract: token})
		require.NoError(t, err)
		assert.True(t, result.Found())
		assert.Equal(t, addrOne, result.Record.Address)
	})

	t.Run("not tracked", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("GetRecord", mock.Anything, block, token).Return(nil, nil)

		result, err := usecase.NewShowDeployment(tracker).Run(ctx, usecase.ShowDeploymentParams{BlockHash: block, Contract: token})
		require.NoError(t, err)
		assert.False(t, result.Found())
	})

	t.Run("missing database is an error", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("GetRecord", mock.Anything, block, token).Return(nil, domain.ErrDatabaseNotFound)

		_, err := usecase.NewShowDeployment(tracker).Run(ctx, usecase.ShowDeploymentParams{BlockHash: block, Contract: token})
		assert.True(t, errors.Is(err, domain.ErrDatabaseNotFound))
	})
}
