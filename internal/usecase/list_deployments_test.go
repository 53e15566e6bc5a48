package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

func TestListDeployments(t *testing.T) {
	ctx := context.Background()
	addrTwo := common.HexToAddress("0x2222222222222222222222222222222222222222")

	t.Run("single chain sorted by name", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("Exists").Return(true)
		tracker.On("GetAllForChain", mock.Anything, block).Return(models.ChainBucket{
			"0xbb": {Name: "Token", Address: addrOne},
			"0xaa": {Name: "Registry", Address: addrTwo},
		}, nil)

		result, err := usecase.NewListDeployments(tracker, &MockProgressSink{}).Run(ctx, usecase.ListDeploymentsParams{BlockHash: block})
		require.NoError(t, err)

		assert.Equal(t, domain.ChainKey(block), result.ChainKey)
		require.Len(t, result.Deployments, 2)
		assert.Equal(t, "Registry", result.Deployments[0].Record.Name)
		assert.Equal(t, "0xaa", result.Deployments[0].ContractKey)
		assert.Equal(t, "Token", result.Deployments[1].Record.Name)
	})

	t.Run("no database lists nothing", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("Exists").Return(false)
		tracker.On("GetAllForChain", mock.Anything, block).Return(nil, nil)

		result, err := usecase.NewListDeployments(tracker, &MockProgressSink{}).Run(ctx, usecase.ListDeploymentsParams{BlockHash: block})
		require.NoError(t, err)
		assert.False(t, result.DatabaseExists)
		assert.Empty(t, result.Deployments)
	})

	t.Run("all chains", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("Exists").Return(true)
		tracker.On("Load", mock.Anything).Return(models.TrackingDatabase{
			"0x02": {"0xaa": {Name: "Token", Address: addrTwo}},
			"0x01": {"0xaa": {Name: "Token", Address: addrOne}},
		}, nil)

		result, err := usecase.NewListDeployments(tracker, &MockProgressSink{}).Run(ctx, usecase.ListDeploymentsParams{All: true})
		require.NoError(t, err)
		require.Len(t, result.Deployments, 2)
		assert.Equal(t, "0x01", result.Deployments[0].ChainKey)
		assert.Equal(t, "0x02", result.Deployments[1].ChainKey)
		tracker.AssertNotCalled(t, "GetAllForChain", mock.Anything, mock.Anything)
	})

	t.Run("all chains without database", func(t *testing.T) {
		tracker := new(MockDeploymentTracker)
		tracker.On("Exists").Return(false)

		result, err := usecase.NewListDeployments(tracker, &MockProgressSink{}).Run(ctx, usecase.ListDeploymentsParams{All: true})
		require.NoError(t, err)
		assert.Empty(t, result.Deployments)
		tracker.AssertNotCalled(t, "Load", mock.Anything)
	})
}
